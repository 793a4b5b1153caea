// femtogen bakes an STL model into a static femtogl.Geometry literal, so
// embedded builds carry their meshes in flash instead of parsing files at
// runtime.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"femtogl/internal/buildinfo"
	"femtogl/stl"
)

var (
	outPath string
	pkgName string
	varName string
)

var rootCmd = &cobra.Command{
	Use:     "femtogen <model.stl>",
	Short:   "Generate a Go geometry literal from an STL file",
	Long:    "femtogen parses an ASCII or binary STL file, indexes and deduplicates its vertices, derives wireframe edges, and writes a Go source file containing a static femtogl.Geometry value.",
	Args:    cobra.ExactArgs(1),
	Version: buildinfo.Short(),
	RunE:    runGen,
}

func init() {
	rootCmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default: stdout)")
	rootCmd.Flags().StringVarP(&pkgName, "package", "p", "model", "Package name for the generated file")
	rootCmd.Flags().StringVarP(&varName, "name", "n", "", "Variable name (default: derived from the file name)")
}

func runGen(cmd *cobra.Command, args []string) error {
	input := args[0]

	model, err := stl.ParseFile(input)
	if err != nil {
		return err
	}

	name := varName
	if name == "" {
		name = identFromFile(input)
	}

	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	return generate(out, model, filepath.Base(input), pkgName, name)
}

// identFromFile turns "lunar-lander.stl" into "LunarLander".
func identFromFile(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	var b strings.Builder
	up := true
	for _, r := range base {
		switch {
		case r == '-' || r == '_' || r == ' ' || r == '.':
			up = true
		case up:
			b.WriteRune([]rune(strings.ToUpper(string(r)))[0])
			up = false
		default:
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "Model"
	}
	return b.String()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
