package xlsx

// Conditional format kinds.
const (
	CondFormatColorScale = "colorScale"
	CondFormatDataBar    = "dataBar"
	CondFormatCellIs     = "cellIs"
	CondFormatIconSet    = "iconSet"
)

// ConditionalFormat colors cells based on their values. Build one with
// NewColorScale, NewDataBar, NewCellIs or NewIconSet and attach it with
// Sheet.AddConditionalFormat. Colors are hex strings, "RRGGBB" or
// "AARRGGBB", with or without a leading '#'.
type ConditionalFormat struct {
	Range string // sqref the rule applies to
	Type  string

	// Color scale: two or three stop colors, min to max.
	ScaleColors []string

	// Data bar fill color.
	BarColor string

	// Cell-is comparison.
	Operator string // "greaterThan", "lessThan", "equal", "between", ...
	Formula  string
	Formula2 string // second bound for "between"
	Fill     string // cell fill applied when the comparison holds
	FontCol  string // font color applied when the comparison holds

	// Icon set name, e.g. "3TrafficLights1".
	IconStyle string
}

// NewColorScale builds a two- or three-color scale over the range. The
// colors run from the minimum value to the maximum.
func NewColorScale(rangeRef string, colors ...string) *ConditionalFormat {
	return &ConditionalFormat{
		Range:       rangeRef,
		Type:        CondFormatColorScale,
		ScaleColors: colors,
	}
}

// NewDataBar builds an in-cell bar whose length tracks the cell value.
func NewDataBar(rangeRef, barColor string) *ConditionalFormat {
	return &ConditionalFormat{
		Range:    rangeRef,
		Type:     CondFormatDataBar,
		BarColor: barColor,
	}
}

// NewCellIs builds a comparison rule. Operator accepts both the OOXML
// names ("greaterThan") and the symbolic forms (">", ">=", "<", "<=",
// "=", "!=", "between").
func NewCellIs(rangeRef, operator, formula string) *ConditionalFormat {
	return &ConditionalFormat{
		Range:    rangeRef,
		Type:     CondFormatCellIs,
		Operator: normalizeOperator(operator),
		Formula:  formula,
	}
}

// NewIconSet builds an icon set rule with the given set name.
func NewIconSet(rangeRef, iconStyle string) *ConditionalFormat {
	if iconStyle == "" {
		iconStyle = "3TrafficLights1"
	}
	return &ConditionalFormat{
		Range:     rangeRef,
		Type:      CondFormatIconSet,
		IconStyle: iconStyle,
	}
}

// SetFormula2 sets the upper bound for a "between" comparison.
func (cf *ConditionalFormat) SetFormula2(formula string) *ConditionalFormat {
	cf.Formula2 = formula
	return cf
}

// SetFill sets the cell fill applied when a cell-is rule matches.
func (cf *ConditionalFormat) SetFill(hex string) *ConditionalFormat {
	cf.Fill = hex
	return cf
}

// SetFontColor sets the font color applied when a cell-is rule matches.
func (cf *ConditionalFormat) SetFontColor(hex string) *ConditionalFormat {
	cf.FontCol = hex
	return cf
}

func normalizeOperator(op string) string {
	switch op {
	case ">", "gt":
		return "greaterThan"
	case ">=", "gte":
		return "greaterThanOrEqual"
	case "<", "lt":
		return "lessThan"
	case "<=", "lte":
		return "lessThanOrEqual"
	case "=", "==", "eq":
		return "equal"
	case "!=", "<>", "ne":
		return "notEqual"
	default:
		return op
	}
}
