package retile

import "image"

// IsValid reports whether tileSize divides imageSize exactly in both
// dimensions, ordering has one entry per tile and no entry is repeated.
// Range membership of the entries is not checked.
func IsValid(imageSize, tileSize image.Point, ordering []int) bool {
	if tileSize.X <= 0 || tileSize.Y <= 0 {
		return false
	}

	if imageSize.X%tileSize.X != 0 || imageSize.Y%tileSize.Y != 0 {
		return false
	}

	if (imageSize.X/tileSize.X)*(imageSize.Y/tileSize.Y) != len(ordering) {
		return false
	}

	seen := make(map[int]struct{}, len(ordering))
	for _, i := range ordering {
		if _, ok := seen[i]; ok {
			return false
		}
		seen[i] = struct{}{}
	}

	return true
}
