package rgbmask

import "fmt"

// MaskLevels are the only intensities a mask pixel can take: the number of
// passing channels times 255/3.
var MaskLevels = [4]uint8{0, 85, 170, 255}

// MaskStats counts mask pixels by how many channels passed.
type MaskStats struct {
	Total  int
	Levels [4]int // index = number of passing channels
}

// Summarize builds a histogram of a mask produced by Apply. Pixels whose
// intensity is not one of MaskLevels are not counted in Levels.
func Summarize(mask *PixelBuffer) MaskStats {
	var s MaskStats
	if mask == nil {
		return s
	}
	for off := 0; off+3 < len(mask.Pix); off += 4 {
		s.Total++
		switch mask.Pix[off] {
		case 0:
			s.Levels[0]++
		case 85:
			s.Levels[1]++
		case 170:
			s.Levels[2]++
		case 255:
			s.Levels[3]++
		}
	}
	return s
}

// Coverage is the fraction of pixels that passed all three channel tests.
func (s MaskStats) Coverage() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Levels[3]) / float64(s.Total)
}

func (s MaskStats) String() string {
	return fmt.Sprintf("{Total=%d, 0/3=%d, 1/3=%d, 2/3=%d, 3/3=%d, Coverage=%.2f%%}",
		s.Total, s.Levels[0], s.Levels[1], s.Levels[2], s.Levels[3], s.Coverage()*100)
}
