package blocks

import "fmt"

// Validate checks the structural invariants of a block sequence:
// unique ids, heading levels restricted to 2 and 3, and non-empty list
// items. Unknown block types pass; their payload is opaque here.
func Validate(bs []Block) error {
	seen := make(map[string]struct{}, len(bs))
	for i, b := range bs {
		if b.ID == "" {
			return fmt.Errorf("block %d has no id", i)
		}
		if _, dup := seen[b.ID]; dup {
			return fmt.Errorf("duplicate block id %q", b.ID)
		}
		seen[b.ID] = struct{}{}

		switch d := b.Data.(type) {
		case HeadingData:
			if d.Level != 2 && d.Level != 3 {
				return fmt.Errorf("block %q: heading level must be 2 or 3", b.ID)
			}
		case ListData:
			if len(d.Items) == 0 {
				return fmt.Errorf("block %q: list has no items", b.ID)
			}
		}
	}
	return nil
}
