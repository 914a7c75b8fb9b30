package widget

// The schema table is the authoritative contract between the server and the
// client renderer. The typed Node struct already enforces field shapes; the
// table remains the source of truth at the trust boundary where untyped JSON
// is decoded (see Decode) and for tooling that reasons about kinds.

var containerKinds = map[Kind]struct{}{
	KindCard:     {},
	KindListView: {},
	KindForm:     {},
}

var componentKinds = map[Kind]struct{}{
	KindBadge:        {},
	KindBox:          {},
	KindRow:          {},
	KindCol:          {},
	KindButton:       {},
	KindCaption:      {},
	KindDatePicker:   {},
	KindDivider:      {},
	KindIcon:         {},
	KindImage:        {},
	KindListViewItem: {},
	KindMarkdown:     {},
	KindSelect:       {},
	KindSpacer:       {},
	KindText:         {},
	KindTitle:        {},
	KindTransition:   {},
}

// requiredFields lists, per kind, the fields the Validator insists on.
// Kinds absent from the table have no required fields beyond the kind itself.
var requiredFields = map[Kind][]string{
	KindButton:   {"label"},
	KindForm:     {"onSubmitAction"},
	KindImage:    {"src"},
	KindIcon:     {"name"},
	KindText:     {"value"},
	KindTitle:    {"value"},
	KindCaption:  {"value"},
	KindMarkdown: {"value"},
	KindSelect:   {"name", "options"},
}

// ValidKind reports whether k is part of the closed enumeration.
func ValidKind(k Kind) bool {
	if _, ok := containerKinds[k]; ok {
		return true
	}
	_, ok := componentKinds[k]
	return ok
}

// IsContainer reports whether k is a container kind (card, listView, form).
func IsContainer(k Kind) bool {
	_, ok := containerKinds[k]
	return ok
}

// FieldsFor returns the required field names for a kind.
// Returns nil for kinds without kind-specific requirements.
func FieldsFor(k Kind) []string {
	return requiredFields[k]
}

// Kinds returns all valid kinds, containers first.
func Kinds() []Kind {
	out := make([]Kind, 0, len(containerKinds)+len(componentKinds))
	for k := range containerKinds {
		out = append(out, k)
	}
	for k := range componentKinds {
		out = append(out, k)
	}
	return out
}
