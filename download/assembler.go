package download

import "fmt"

// Assemble concatenates the results in plan order, regardless of the order in
// which they were fetched. The result set must hold one entry per planned
// range; anything else is a bug in the caller and panics.
func Assemble(plan Plan, results *ResultSet) []byte {
	if results == nil || results.Len() != plan.Len() || len(results.slots) != plan.Len() {
		panic(fmt.Sprintf("download: assembling %d planned ranges from an incomplete result set", plan.Len()))
	}

	out := make([]byte, 0, plan.TotalLength())
	for i := range plan.Len() {
		r := plan.At(i)
		result := results.slots[i]
		if result.Range != r || int64(len(result.Bytes)) != r.Len() {
			panic(fmt.Sprintf("download: result for %s does not match planned range at position %d", result.Range, i))
		}
		out = append(out, result.Bytes...)
	}

	return out
}
