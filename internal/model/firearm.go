package model

// FirearmID uniquely identifies a firearm in the catalog
type FirearmID string

// FirearmType categorizes a firearm
type FirearmType string

const (
	FirearmTypeRifle          FirearmType = "Rifle"
	FirearmTypeSMG            FirearmType = "Sub Machine Gun"
	FirearmTypeHandgun        FirearmType = "Handgun"
	FirearmTypeShotgun        FirearmType = "Shotgun"
	FirearmTypeLMG            FirearmType = "Light Machine Gun"
	FirearmTypePrecisionRifle FirearmType = "Precision Rifle"
	FirearmTypeCarbine        FirearmType = "Carbine"
)

// ModelType classifies how a firearm model was adopted
type ModelType string

const (
	ModelTypePrototype ModelType = "Prototype"
	ModelTypeCivilian  ModelType = "Civilian"
	ModelTypeMilitary  ModelType = "Military"
	ModelTypePolice    ModelType = "Police"
)

// ActionType describes a firearm's operating mechanism
type ActionType string

const (
	ActionBreechBlock            ActionType = "Breech Block"
	ActionDroppingBlock          ActionType = "Dropping Block"
	ActionPivotingBlock          ActionType = "Pivoting Block"
	ActionFallingBlock           ActionType = "Falling Block"
	ActionRollingBlock           ActionType = "Rolling Block"
	ActionHingedBlock            ActionType = "Hinged Block"
	ActionBreakAction            ActionType = "Break-action"
	ActionRotatingBoltAction     ActionType = "Rotating Bolt-action"
	ActionStraightPullBoltAction ActionType = "Straight-pull Bolt-action"
	ActionLeverAction            ActionType = "Lever-action"
	ActionPumpAction             ActionType = "Pump-action"
	ActionSingleActionRevolver   ActionType = "Single Action Revolver"
	ActionDoubleActionRevolver   ActionType = "Double Action Revolver"
	ActionSimpleBlowback         ActionType = "Simple Blowback"
	ActionBlowForward            ActionType = "Blow-forward"
	ActionShortRecoil            ActionType = "Short-recoil"
	ActionLongRecoil             ActionType = "Long-recoil"
	ActionInertia                ActionType = "Inertia"
	ActionShortStrokeGasPiston   ActionType = "Short-stroke Gas Piston"
	ActionLongStrokeGasPiston    ActionType = "Long-stroke Gas Piston"
	ActionDirectImpingement      ActionType = "Direct Impingement"
	ActionGasTrap                ActionType = "Gas Trap"
	ActionMatchlock              ActionType = "Matchlock"
	ActionFlintlock              ActionType = "Flintlock"
	ActionWheellock              ActionType = "Wheellock"
	ActionCaplock                ActionType = "Caplock"
)

// Firearm is a catalog record. Sessions hold a snapshot of their target
// firearm and never mutate it.
type Firearm struct {
	ID              FirearmID
	Name            string
	Manufacturer    string
	Type            FirearmType
	Caliber         string
	CountryOfOrigin string
	ModelType       ModelType
	YearIntroduced  *int // nil if unknown
	ActionType      ActionType
	Description     string
	ImageURL        string
}
