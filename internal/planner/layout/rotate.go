package layout

import "studio-planner/internal/planner/models"

// Rotate turns item a quarter clockwise. Landing on 90 or 270 swaps width
// and depth; 180 and 0 keep the footprint. The position is left alone even
// if the new footprint sticks out of the room.
func Rotate(item models.Equipment) models.Equipment {
	out := item.Clone()
	out.Rotation = models.Rotation(((int(item.Rotation)+90)%360 + 360) % 360)
	if out.Rotation.Quarter() {
		out.Width, out.Depth = item.Depth, item.Width
	}
	return out
}

// RotationPatch is the store update equivalent of Rotate.
func RotationPatch(item models.Equipment) models.Patch {
	next := Rotate(item)
	patch := models.Patch{Rotation: &next.Rotation}
	if next.Rotation.Quarter() {
		patch.Width = &next.Width
		patch.Depth = &next.Depth
	}
	return patch
}
