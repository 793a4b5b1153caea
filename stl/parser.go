package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// ParseFile reads an STL file, detecting ASCII vs binary format.
func ParseFile(name string) (*Model, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("stl: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads STL data from r. Files starting with "solid" are parsed as
// ASCII, everything else as binary.
func Parse(r io.Reader) (*Model, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(5)
	if err != nil {
		return nil, fmt.Errorf("stl: reading header: %w", err)
	}
	if string(head) == "solid" {
		return parseASCII(br)
	}
	return parseBinary(br)
}

func parseASCII(r io.Reader) (*Model, error) {
	m := &Model{}
	scanner := bufio.NewScanner(r)

	var cur Triangle
	nverts := 0

	parseF32 := func(s string) float32 {
		v, _ := strconv.ParseFloat(s, 32)
		return float32(v)
	}

	for scanner.Scan() {
		fields := strings.Fields(strings.TrimSpace(scanner.Text()))
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "solid":
			if len(fields) > 1 {
				m.Name = strings.Join(fields[1:], " ")
			}
		case "facet":
			if len(fields) >= 5 && fields[1] == "normal" {
				cur.Normal = [3]float32{parseF32(fields[2]), parseF32(fields[3]), parseF32(fields[4])}
			}
			nverts = 0
		case "vertex":
			if len(fields) >= 4 && nverts < 3 {
				cur.V[nverts] = [3]float32{parseF32(fields[1]), parseF32(fields[2]), parseF32(fields[3])}
				nverts++
			}
		case "endfacet":
			if nverts == 3 {
				m.Triangles = append(m.Triangles, cur)
			}
			nverts = 0
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("stl: reading ascii: %w", err)
	}
	return m, nil
}

func parseBinary(r io.Reader) (*Model, error) {
	header := make([]byte, 80)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("stl: reading binary header: %w", err)
	}

	m := &Model{Name: string(bytes.TrimRight(header, "\x00 "))}

	var countBuf [4]byte
	if _, err := io.ReadFull(r, countBuf[:]); err != nil {
		return nil, fmt.Errorf("stl: reading triangle count: %w", err)
	}
	count := binary.LittleEndian.Uint32(countBuf[:])

	// facet: 3 normal floats, 9 vertex floats, 2 attribute bytes.
	rec := make([]byte, 50)
	for i := uint32(0); i < count; i++ {
		if _, err := io.ReadFull(r, rec); err != nil {
			return nil, fmt.Errorf("stl: reading facet %d of %d: %w", i, count, err)
		}
		var t Triangle
		t.Normal = f32x3(rec[0:])
		t.V[0] = f32x3(rec[12:])
		t.V[1] = f32x3(rec[24:])
		t.V[2] = f32x3(rec[36:])
		m.Triangles = append(m.Triangles, t)
	}
	return m, nil
}

func f32x3(b []byte) [3]float32 {
	return [3]float32{
		math.Float32frombits(binary.LittleEndian.Uint32(b[0:])),
		math.Float32frombits(binary.LittleEndian.Uint32(b[4:])),
		math.Float32frombits(binary.LittleEndian.Uint32(b[8:])),
	}
}
