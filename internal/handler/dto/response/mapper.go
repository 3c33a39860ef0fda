package response

import "github.com/jinzhu/copier"

// mapTo copies matching fields of from into a new T, descending into nested structs.
func mapTo[T any](from any) (T, error) {
	var to T
	err := copier.CopyWithOption(&to, from, copier.Option{DeepCopy: true})
	return to, err
}

func mapSlice[T, V any](views []V) ([]T, error) {
	out := make([]T, 0, len(views))
	for _, v := range views {
		r, err := mapTo[T](v)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
