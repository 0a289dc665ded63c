package mappers

import (
	"github.com/estately/estately/internal/domain/user"
	"github.com/estately/estately/internal/infrastructure/persistence/models"
	"github.com/estately/estately/internal/shared/authorization"
	"github.com/estately/estately/internal/shared/mapper"
)

// UserMapper handles the conversion between domain entities and persistence models
type UserMapper interface {
	ToEntity(model *models.UserModel) *user.User
	ToModel(entity *user.User) *models.UserModel
	ToEntities(models []*models.UserModel) []*user.User
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToEntity(model *models.UserModel) *user.User {
	if model == nil {
		return nil
	}
	return user.ReconstructUser(
		model.ID,
		model.UUID,
		model.Email,
		model.Name,
		model.PasswordHash,
		authorization.ParseUserRole(model.Role),
		model.Blocked,
		model.EmailVerified,
		model.VerificationTokenHash,
		model.VerificationExpiresAt,
		model.ResetTokenHash,
		model.ResetExpiresAt,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *UserMapperImpl) ToModel(entity *user.User) *models.UserModel {
	if entity == nil {
		return nil
	}
	return &models.UserModel{
		ID:                    entity.ID(),
		UUID:                  entity.UUID(),
		Email:                 entity.Email(),
		Name:                  entity.Name(),
		PasswordHash:          entity.PasswordHash(),
		Role:                  entity.Role().String(),
		Blocked:               entity.IsBlocked(),
		EmailVerified:         entity.IsEmailVerified(),
		VerificationTokenHash: entity.VerificationTokenHash(),
		VerificationExpiresAt: entity.VerificationExpiresAt(),
		ResetTokenHash:        entity.ResetTokenHash(),
		ResetExpiresAt:        entity.ResetExpiresAt(),
		Version:               entity.Version(),
		CreatedAt:             entity.CreatedAt(),
		UpdatedAt:             entity.UpdatedAt(),
	}
}

func (m *UserMapperImpl) ToEntities(ms []*models.UserModel) []*user.User {
	return mapper.MapSlice(ms, m.ToEntity)
}
