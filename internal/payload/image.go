package payload

import "io"

// ImageRef is a listing image: either already uploaded or waiting for upload.
type ImageRef interface {
	imageRef()
}

// UploadedImage is an image already available at URL.
type UploadedImage struct {
	URL string
}

// PendingImage is a local file that has not been uploaded yet.
type PendingImage struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

func (UploadedImage) imageRef() {}
func (PendingImage) imageRef()  {}

// HasPending reports whether any image still needs uploading.
func HasPending(images []ImageRef) bool {
	for _, img := range images {
		switch img.(type) {
		case PendingImage, *PendingImage:
			return true
		}
	}
	return false
}

// UploadedURLs returns the URLs of the uploaded images in order.
func UploadedURLs(images []ImageRef) []string {
	out := make([]string, 0, len(images))
	for _, img := range images {
		switch t := img.(type) {
		case UploadedImage:
			out = append(out, t.URL)
		case *UploadedImage:
			if t != nil {
				out = append(out, t.URL)
			}
		}
	}
	return out
}

// URLImages wraps plain URLs as uploaded images.
func URLImages(urls ...string) []ImageRef {
	out := make([]ImageRef, 0, len(urls))
	for _, u := range urls {
		out = append(out, UploadedImage{URL: u})
	}
	return out
}
