package lightsout

// Variant is a registered board configuration.
type Variant struct {
	ID    string
	Title string
	Rows  int // 0 takes the size from the loaded config
	Cols  int
}

// Built-in variants. "custom" sizes its board from the config file.
var (
	VariantClassic = Variant{ID: "classic", Title: "Lights Out", Rows: 5, Cols: 5}
	VariantMini    = Variant{ID: "mini", Title: "Lights Out Mini", Rows: 3, Cols: 3}
	VariantLarge   = Variant{ID: "large", Title: "Lights Out XL", Rows: 7, Cols: 7}
	VariantCustom  = Variant{ID: "custom", Title: "Lights Out Custom"}
)

// Variants lists every built-in variant in menu order.
func Variants() []Variant {
	return []Variant{VariantClassic, VariantMini, VariantLarge, VariantCustom}
}

// DefaultVariantID is played when no variant is named.
const DefaultVariantID = "classic"
