package events

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type CreateEventRequest struct {
	Name     string           `json:"name" binding:"required,min=1,max=255"`
	Date     string           `json:"date" binding:"required"`
	Sections []SectionRequest `json:"sections" binding:"required,min=1,dive"`
}

type SectionRequest struct {
	Name string       `json:"name" binding:"required,min=1,max=255"`
	Rows []RowRequest `json:"rows" binding:"required,min=1,dive"`
}

type RowRequest struct {
	Name       string `json:"name" binding:"required,min=1,max=255"`
	TotalSeats int    `json:"totalSeats" binding:"required,min=1"`
}

// RegisterValidations hooks struct-level layout checks into gin's binding
// validator. Field tags cannot express name uniqueness across a slice.
func RegisterValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterStructValidation(validateCreateEventRequest, CreateEventRequest{})
	}
}

func validateCreateEventRequest(sl validator.StructLevel) {
	req := sl.Current().Interface().(CreateEventRequest)

	sectionNames := make(map[string]struct{}, len(req.Sections))
	for _, section := range req.Sections {
		if _, dup := sectionNames[section.Name]; dup {
			sl.ReportError(section.Name, "Sections", "sections", "unique_section_names", "")
			return
		}
		sectionNames[section.Name] = struct{}{}

		rowNames := make(map[string]struct{}, len(section.Rows))
		for _, row := range section.Rows {
			if _, dup := rowNames[row.Name]; dup {
				sl.ReportError(row.Name, "Sections", "sections", "unique_row_names", "")
				return
			}
			rowNames[row.Name] = struct{}{}
		}
	}
}
