package katsuyo

// Cell is one conjugated form of a verb.
type Cell struct {
	Form    Form
	Surface string
	Gloss   string
}

// Table holds every conjugated form of a verb.
type Table struct {
	// Verb is the verb the table was computed for.
	Verb Verb
	// Cells lists one entry per Form, in AllForms order.
	Cells []Cell
}

// InflectionTable computes all 16 forms of v. It panics like Conjugate
// on malformed verbs.
func InflectionTable(v Verb) *Table {
	forms := AllForms()
	t := &Table{Verb: v, Cells: make([]Cell, 0, len(forms))}
	for _, f := range forms {
		t.Cells = append(t.Cells, Cell{
			Form:    f,
			Surface: v.Conjugate(f),
			Gloss:   v.Translate(f),
		})
	}
	return t
}

// Cell returns the cell for f.
func (t *Table) Cell(f Form) (Cell, bool) {
	for _, c := range t.Cells {
		if c.Form == f {
			return c, true
		}
	}
	return Cell{}, false
}
