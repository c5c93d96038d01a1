package service

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-port-ops/internal/adapter"
	"github.com/MKhiriev/go-port-ops/models"
)

type clientUserService struct {
	api adapter.API
}

func NewClientUserService(api adapter.API) UserService {
	return &clientUserService{api: api}
}

func (u *clientUserService) List(ctx context.Context) ([]models.User, error) {
	return fetchList[models.User](ctx, u.api, u.api.Endpoints().Users.Base, "list users")
}

func (u *clientUserService) Get(ctx context.Context, id string) (models.User, error) {
	id, err := requireID(id)
	if err != nil {
		return models.User{}, err
	}
	return send[models.User](ctx, u.api, http.MethodGet, u.api.Endpoints().Users.ByID(id), nil, "get user")
}

func (u *clientUserService) Profile(ctx context.Context) (models.User, error) {
	return send[models.User](ctx, u.api, http.MethodGet, u.api.Endpoints().Users.Profile, nil, "get profile")
}

func (u *clientUserService) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error) {
	return send[models.User](ctx, u.api, http.MethodPut, u.api.Endpoints().Users.Profile, update, "update profile")
}

func (u *clientUserService) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) (string, error) {
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return "", ErrEmptyCredentials
	}
	resp, err := send[models.MessageResponse](ctx, u.api, http.MethodPut, u.api.Endpoints().Users.ChangePassword, req, "change password")
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (u *clientUserService) Delete(ctx context.Context, id string) error {
	id, err := requireID(id)
	if err != nil {
		return err
	}
	return remove(ctx, u.api, u.api.Endpoints().Users.ByID(id), "delete user")
}
