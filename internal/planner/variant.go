package planner

// Variant identifies the chess variant a schedule is played in.
//
// exotic marks variants that should never be allowed to overlap with
// another instance of themselves regardless of speed or conditions
// (see conflicts, rule 2).
type Variant struct {
	name   string
	exotic bool
}

// NewVariant constructs a Variant. exotic marks non-standard variants
// (Chess960, King of the Hill, Three-check, Antichess, Atomic,
// Horde, Racing Kings, Crazyhouse) that should never overlap
// themselves.
func NewVariant(name string, exotic bool) Variant {
	return Variant{name: name, exotic: exotic}
}

// Name reports the variant's identifying tag.
func (v Variant) Name() string { return v.name }

// Exotic reports whether this variant should never overlap itself.
func (v Variant) Exotic() bool { return v.exotic }

// Equal reports whether two variants are the same tag.
func (v Variant) Equal(other Variant) bool {
	return v.name == other.name
}

// Standard chess variants recognized by the planner. Names mirror the
// domain's usual tags; callers may construct their own Variant values
// for anything not listed here.
var (
	VariantStandard      = NewVariant("standard", false)
	VariantChess960      = NewVariant("chess960", true)
	VariantKingOfTheHill = NewVariant("kingOfTheHill", true)
	VariantThreeCheck    = NewVariant("threeCheck", true)
	VariantAntichess     = NewVariant("antichess", true)
	VariantAtomic        = NewVariant("atomic", true)
	VariantHorde         = NewVariant("horde", true)
	VariantRacingKings   = NewVariant("racingKings", true)
	VariantCrazyhouse    = NewVariant("crazyhouse", true)
)
