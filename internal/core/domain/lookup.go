package domain

// Category is a tenant-independent content category, shared with the main
// content system. Ad groups reference it.
type Category struct {
	ID   int64
	Name string
}

// AdType is a tenant-independent lookup of advertisement format types.
type AdType struct {
	ID   int64
	Name string
}
