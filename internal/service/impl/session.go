package core

import (
	"context"

	"github.com/openlobby/olapp/internal/conversions"
	"github.com/openlobby/olapp/internal/domain"
	"github.com/openlobby/olapp/internal/graphql"
)

func (s *AppService) GetViewer(ctx context.Context, token string) (*domain.Author, error) {
	data, err := s.Client.Query(ctx, "", nil, token)
	if err != nil {
		return nil, err
	}
	return conversions.ViewerFromData(data)
}

func (s *AppService) GetLoginShortcuts(ctx context.Context, token string) ([]domain.LoginShortcut, *domain.Author, error) {
	body := `loginShortcuts {
    id
    name
}`

	data, err := s.Client.Query(ctx, body, nil, token)
	if err != nil {
		return nil, nil, err
	}
	viewer, err := conversions.ViewerFromData(data)
	if err != nil {
		return nil, nil, err
	}

	rawShortcuts, _ := data["loginShortcuts"].([]any)
	shortcuts := make([]domain.LoginShortcut, 0, len(rawShortcuts))
	for _, r := range rawShortcuts {
		raw, ok := r.(map[string]any)
		if !ok {
			continue
		}
		globalID, _ := raw["id"].(string)
		_, id, err := graphql.DecodeGlobalID(globalID)
		if err != nil {
			return nil, viewer, err
		}
		name, _ := raw["name"].(string)
		shortcuts = append(shortcuts, domain.LoginShortcut{ID: id, Name: name})
	}
	return shortcuts, viewer, nil
}

const loginMutation = `mutation login ($input: LoginInput!) {
    login (input: $input) {
        authorizationUrl
    }
}`

func (s *AppService) Login(ctx context.Context, openidUID, redirectURI string) (string, error) {
	variables := map[string]any{"input": map[string]any{
		"openidUid":   openidUID,
		"redirectUri": redirectURI,
	}}
	data, err := s.Client.Execute(ctx, loginMutation, variables, "")
	if err != nil {
		return "", err
	}
	return authorizationURL(data, "login")
}

const loginByShortcutMutation = `mutation loginByShortcut ($input: LoginByShortcutInput!) {
    loginByShortcut (input: $input) {
        authorizationUrl
    }
}`

func (s *AppService) LoginByShortcut(ctx context.Context, shortcutID, redirectURI string) (string, error) {
	variables := map[string]any{"input": map[string]any{
		"shortcutId":  graphql.EncodeGlobalID("LoginShortcut", shortcutID),
		"redirectUri": redirectURI,
	}}
	data, err := s.Client.Execute(ctx, loginByShortcutMutation, variables, "")
	if err != nil {
		return "", err
	}
	return authorizationURL(data, "loginByShortcut")
}

const logoutMutation = `mutation {
    logout (input: {}) {
        success
    }
}`

func (s *AppService) Logout(ctx context.Context, token string) (bool, error) {
	data, err := s.Client.Execute(ctx, logoutMutation, nil, token)
	if err != nil {
		return false, err
	}
	payload, err := objectField(data, "logout")
	if err != nil {
		return false, err
	}
	success, _ := payload["success"].(bool)
	return success, nil
}

func authorizationURL(data map[string]any, field string) (string, error) {
	payload, err := objectField(data, field)
	if err != nil {
		return "", err
	}
	u, _ := payload["authorizationUrl"].(string)
	return u, nil
}
