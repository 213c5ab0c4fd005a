package transport

type CreateProductRequest struct {
	Name  *string `json:"name"`
	Price *int    `json:"price"`
	Image *string `json:"image"`
}

// Validate checks field presence only. Value ranges are intentionally not
// restricted here, existing rows rely on the lenient behavior.
func (r CreateProductRequest) Validate() error {
	fields := map[string]string{}
	if r.Name == nil {
		fields["name"] = "name must not be null"
	}
	if r.Price == nil {
		fields["price"] = "price must not be null"
	}
	if r.Image == nil {
		fields["image"] = "image must not be null"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// UpdateProductRequest is a patch: a nil field means "keep the stored value".
type UpdateProductRequest struct {
	Name  *string `json:"name"`
	Price *int    `json:"price"`
	Image *string `json:"image"`
}

type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "request validation failed"
}
