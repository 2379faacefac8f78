package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/shoplist/pkg/api"
)

func TestGetPersonalization_Defaults(t *testing.T) {
	env := setupTestServer(t)

	resp, err := env.prefs.GetPersonalization(context.Background(), connect.NewRequest(&api.GetPersonalizationRequest{}))
	require.NoError(t, err)

	require.NotEmpty(t, resp.Msg.Categories)
	assert.Equal(t, "", resp.Msg.Categories[0].Value)
	assert.Len(t, resp.Msg.Templates, 2)
	assert.Empty(t, resp.Msg.NameCategoryMap)
	assert.Contains(t, resp.Msg.Icons, "groceries")
}

func TestSavePersonalization(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	_, err := env.prefs.SavePersonalization(ctx, connect.NewRequest(&api.SavePersonalizationRequest{}))
	assertCode(t, err, connect.CodeInvalidArgument)

	resp, err := env.prefs.SavePersonalization(ctx, connect.NewRequest(&api.SavePersonalizationRequest{
		Categories: []*api.Category{
			{Value: "groceries", Label: "Food"},
			{Value: "pets", Label: "Pets", Icon: "not-an-icon"},
			{Value: "broken", Label: " "},
		},
		NameCategoryMap: map[string]string{"  Dog Food ": "pets", " ": "x"},
	}))
	require.NoError(t, err)

	byValue := make(map[string]*api.Category)
	for _, c := range resp.Msg.Categories {
		byValue[c.Value] = c
	}
	assert.Equal(t, "Food", byValue["groceries"].Label)
	assert.Equal(t, "groceries", byValue["groceries"].Icon, "personal entry keeps the default icon")
	require.Contains(t, byValue, "pets")
	assert.Equal(t, "", byValue["pets"].Icon, "unknown icon keys are cleared")
	assert.NotContains(t, byValue, "broken")
	assert.Equal(t, map[string]string{"dog food": "pets"}, resp.Msg.NameCategoryMap)
	assert.Len(t, resp.Msg.Templates, 2, "templates untouched fall back to defaults")

	// A later save of one section keeps the others.
	resp, err = env.prefs.SavePersonalization(ctx, connect.NewRequest(&api.SavePersonalizationRequest{
		Templates: []*api.Template{{Name: "Pets", Items: []*api.TemplateItem{{Name: "Dog food"}, {Name: " "}}}},
	}))
	require.NoError(t, err)
	require.Len(t, resp.Msg.Templates, 1)
	assert.Len(t, resp.Msg.Templates[0].Items, 1)
	assert.Equal(t, "pets", resp.Msg.NameCategoryMap["dog food"])
}
