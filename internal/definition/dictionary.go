package definition

// Dictionary maps codes to display names and remembers insertion order.
// The order drives the order of summary output.
type Dictionary struct {
	codes []string
	names map[string]string
}

// NewDictionary returns an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{names: make(map[string]string)}
}

// Put inserts or renames code. A code keeps the position of its first insertion.
func (d *Dictionary) Put(code, name string) {
	if _, exists := d.names[code]; !exists {
		d.codes = append(d.codes, code)
	}
	d.names[code] = name
}

// Name returns the display name for code.
func (d *Dictionary) Name(code string) (string, bool) {
	name, ok := d.names[code]
	return name, ok
}

// Contains reports whether code is defined.
func (d *Dictionary) Contains(code string) bool {
	_, ok := d.names[code]
	return ok
}

// Codes returns the defined codes in insertion order.
func (d *Dictionary) Codes() []string {
	out := make([]string, len(d.codes))
	copy(out, d.codes)
	return out
}

// Len returns the number of defined codes.
func (d *Dictionary) Len() int {
	return len(d.codes)
}

// Totals holds the running amount for every code of its paired Dictionary.
type Totals map[string]int64
