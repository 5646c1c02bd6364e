package domain

import "strings"

// Mech location identifiers. Rear torso locations carry a "_rear" suffix
// and share armor facings with their front counterpart's structure.
const (
	LocationHead        = "head"
	LocationCenterTorso = "center_torso"
	LocationLeftTorso   = "left_torso"
	LocationRightTorso  = "right_torso"
	LocationLeftArm     = "left_arm"
	LocationRightArm    = "right_arm"
	LocationLeftLeg     = "left_leg"
	LocationRightLeg    = "right_leg"

	LocationCenterTorsoRear = "center_torso_rear"
	LocationLeftTorsoRear   = "left_torso_rear"
	LocationRightTorsoRear  = "right_torso_rear"
)

const rearSuffix = "_rear"

// BaseLocation strips the rear suffix, mapping a rear facing to the
// location it belongs to.
func BaseLocation(location string) string {
	return strings.TrimSuffix(location, rearSuffix)
}

// DependentArm returns the arm destroyed alongside a side torso, or "" for
// locations without a cascade. Both front and rear torso facings cascade.
func DependentArm(location string) string {
	switch BaseLocation(location) {
	case LocationLeftTorso:
		return LocationLeftArm
	case LocationRightTorso:
		return LocationRightArm
	default:
		return ""
	}
}
