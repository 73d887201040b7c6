package lessons

// SetThrough stores v in the variable p points to.
func SetThrough(p *int, v int) {
	*p = v
}

// SetThroughTwice stores v in the variable reached through two levels of
// indirection.
func SetThroughTwice(pp **int, v int) {
	**pp = v
}
