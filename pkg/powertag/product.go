package powertag

// ProductType describes one row of the wireless-device product table:
// the numeric code the device reports, its commercial reference and its
// human-readable label.
type ProductType struct {
	Code      uint16
	Reference string
	Label     string
}

// productTypes is the published code table. The table is open: codes for
// newer products may appear on a gateway before this table learns them, so
// lookups report "not found" instead of failing.
var productTypes = []ProductType{
	{41, "A9MEM1520", "PowerTag M63 1P"},
	{42, "A9MEM1521", "PowerTag M63 1P+N Top"},
	{43, "A9MEM1522", "PowerTag M63 1P+N Bottom"},
	{44, "A9MEM1540", "PowerTag M63 3P"},
	{45, "A9MEM1541", "PowerTag M63 3P+N Top"},
	{46, "A9MEM1542", "PowerTag M63 3P+N Bottom"},
	{81, "A9MEM1560", "PowerTag F63 1P+N"},
	{82, "A9MEM1561", "PowerTag P63 1P+N Top"},
	{83, "A9MEM1562", "PowerTag P63 1P+N Bottom"},
	{84, "A9MEM1563", "PowerTag P63 1P+N Bottom"},
	{85, "A9MEM1570", "PowerTag F63 3P+N"},
	{86, "A9MEM1571", "PowerTag P63 3P+N Top"},
	{87, "A9MEM1572", "PowerTag P63 3P+N Bottom"},
	{92, "LV434020", "PowerTag M250 3P"},
	{93, "LV434021", "PowerTag M250 4P"},
	{94, "LV434022", "PowerTag M630 3P"},
	{95, "LV434023", "PowerTag M630 4P"},
	{96, "A9MEM1543", "PowerTag M63 3P 230 V"},
	{97, "A9XMC2D3", "PowerTag C 2DI 230 V"},
	{98, "A9XMC1D3", "PowerTag C IO 230 V"},
	{101, "A9MEM1564", "PowerTag F63 1P+N 110 V"},
	{102, "A9MEM1573", "PowerTag F63 3P"},
	{103, "A9MEM1574", "PowerTag F63 3P+N 110/230 V"},
	{104, "A9MEM1590", "PowerTag R200"},
	{105, "A9MEM1591", "PowerTag R600"},
	{106, "A9MEM1592", "PowerTag R1000"},
	{107, "A9MEM1593", "PowerTag R2000"},
	{121, "A9MEM1580", "PowerTag F160"},
	{170, "A9XMWRD", "PowerTag Link display"},
	{171, "SMT10020", "HeatTag sensor"},
}

// ProductTypeByCode looks up a product by its reported numeric code.
// The second result is false when the code is not in the table.
func ProductTypeByCode(code uint16) (ProductType, bool) {
	for _, p := range productTypes {
		if p.Code == code {
			return p, true
		}
	}
	return ProductType{}, false
}

// ProductTypes returns a copy of the product table in code order.
func ProductTypes() []ProductType {
	out := make([]ProductType, len(productTypes))
	copy(out, productTypes)
	return out
}

// String returns the commercial reference.
func (p ProductType) String() string {
	return p.Reference
}
