package board

import "fmt"

// ResolvedImage is an image tagged with the format the renderer should use.
type ResolvedImage struct {
	Image
	Format ImageFormat
}

// ImageSet is anything that can look images up by id.
type ImageSet interface {
	Image(id string) (Image, bool)
}

// ResolveImage returns the button's image, or nil when the button has none.
// A dangling image reference is a ConsistencyError; no placeholder is
// substituted.
func ResolveImage(btn Button, images ImageSet) (*ResolvedImage, error) {
	if btn.ImageID == "" {
		return nil, nil
	}
	img, ok := images.Image(btn.ImageID)
	if !ok {
		name := ""
		if b, isBoard := images.(*Board); isBoard {
			name = b.Name
		}
		return nil, &ConsistencyError{
			Board:    name,
			Problems: []string{fmt.Sprintf("button %q references unknown image %q", btn.ID, btn.ImageID)},
		}
	}
	return &ResolvedImage{Image: img, Format: img.Format()}, nil
}
