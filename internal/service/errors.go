package service

import "fmt"

// MappingError means the weather API answered with a decodable body that lacks
// a field the response models need.
type MappingError struct {
	Field string
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("weather API response is missing %s", e.Field)
}
