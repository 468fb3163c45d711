package service

// Storage keys, shared with older browser-saved data.
const (
	KeyEquipment         = "pottery-studio-equipment"
	KeyWidth             = "pottery-studio-width"
	KeyDepth             = "pottery-studio-depth"
	KeyDoorPosition      = "pottery-studio-door-position"
	KeyShowUtilities     = "pottery-studio-show-utilities"
	KeyShowKilnClearance = "pottery-studio-show-kiln-clearance"
	KeyShowKilnWall      = "pottery-studio-show-kiln-wall"
	KeyLastSaved         = "pottery-studio-last-saved"
)
