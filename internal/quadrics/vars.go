package quadrics

var (
	Debug = false // set to true for verbose debug output and traversal event stats
	PNG   = false // set to true to save a PNG sequence instead of an animated GIF
	ASCII = false // set to true to print the configured plane to stdout after filling

	// offsets26 are the unit lattice offsets around a voxel, zero excluded.
	offsets26 = func() [NumNeighbors]Coord {
		var o [NumNeighbors]Coord
		n := 0
		for dx := int64(-1); dx <= 1; dx++ {
			for dy := int64(-1); dy <= 1; dy++ {
				for dz := int64(-1); dz <= 1; dz++ {
					if dx == 0 && dy == 0 && dz == 0 {
						continue
					}
					o[n] = Coord{dx, dy, dz}
					n++
				}
			}
		}
		return o
	}()

	// Compile time checks that both grid forms can be rendered
	_ Plotter = (*Grid)(nil)
	_ Plotter = (*Frozen)(nil)
)
