package repo

type filter struct {
	id      *string
	exclude *string
	fields  map[string]any
	fn      func(any) bool
}

type Filter func(*filter)

func ByID(id string) Filter {
	return func(f *filter) {
		f.id = &id
	}
}

// Exclude drops the record with the given id from the result.
func Exclude(id string) Filter {
	return func(f *filter) {
		f.exclude = &id
	}
}

func ByField(name string, value any) Filter {
	return func(f *filter) {
		if f.fields == nil {
			f.fields = make(map[string]any, 1)
		}
		f.fields[name] = value
	}
}

// Where filters records on the application side. Use it for
// predicates that do not map to an indexed field.
func Where[T any](pred func(T) bool) Filter {
	check := func(x any) bool {
		t, ok := x.(T)
		return ok && pred(t)
	}
	return func(f *filter) {
		f.fn = check
	}
}

func apply(filters []Filter) filter {
	var f filter
	for _, set := range filters {
		set(&f)
	}
	return f
}
