// internals/features/academics/direction/dto/direction_dto.go
package dto

import (
	directionModel "edcrm_backend/internals/features/academics/direction/model"
)

type CreateDirectionRequest struct {
	Name        string  `json:"name" validate:"required,max=120"`
	Description *string `json:"description"`
}

func (r *CreateDirectionRequest) ToModel() directionModel.DirectionModel {
	return directionModel.DirectionModel{
		DirectionName:        r.Name,
		DirectionDescription: r.Description,
	}
}

type UpdateDirectionRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=120"`
	Description *string `json:"description"`
}
