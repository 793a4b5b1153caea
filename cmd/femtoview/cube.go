package main

import "femtogl"

// cubeGeometry returns a unit cube centered on the origin. Faces wind
// counter-clockwise seen from outside; Lines holds the 12 outline edges so
// wireframe mode does not have to derive them per frame.
func cubeGeometry() femtogl.Geometry {
	return femtogl.Geometry{
		Vertices: [][3]float32{
			{-1, -1, -1}, // 0
			{1, -1, -1},  // 1
			{1, 1, -1},   // 2
			{-1, 1, -1},  // 3
			{-1, -1, 1},  // 4
			{1, -1, 1},   // 5
			{1, 1, 1},    // 6
			{-1, 1, 1},   // 7
		},
		Faces: [][3]int{
			{4, 5, 6}, {4, 6, 7}, // +Z
			{1, 0, 3}, {1, 3, 2}, // -Z
			{5, 1, 2}, {5, 2, 6}, // +X
			{0, 4, 7}, {0, 7, 3}, // -X
			{7, 6, 2}, {7, 2, 3}, // +Y
			{0, 1, 5}, {0, 5, 4}, // -Y
		},
		Normals: [][3]float32{
			{0, 0, 1}, {0, 0, 1},
			{0, 0, -1}, {0, 0, -1},
			{1, 0, 0}, {1, 0, 0},
			{-1, 0, 0}, {-1, 0, 0},
			{0, 1, 0}, {0, 1, 0},
			{0, -1, 0}, {0, -1, 0},
		},
		Colors: []femtogl.Color{
			femtogl.RGB565(230, 60, 60),
			femtogl.RGB565(60, 230, 60),
			femtogl.RGB565(60, 60, 230),
			femtogl.RGB565(230, 230, 60),
			femtogl.RGB565(230, 60, 230),
			femtogl.RGB565(60, 230, 230),
			femtogl.RGB565(230, 140, 60),
			femtogl.RGB565(200, 200, 200),
		},
		Lines: [][2]int{
			{0, 1}, {1, 2}, {2, 3}, {0, 3},
			{4, 5}, {5, 6}, {6, 7}, {4, 7},
			{0, 4}, {1, 5}, {2, 6}, {3, 7},
		},
	}
}
