package service

// applyPatch overwrites dst when the patch field is present. Patch structs
// use pointer fields so "absent" and "set to zero value" stay distinguishable.
func applyPatch[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
