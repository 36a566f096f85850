package bungie_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"loadout-manager/core/bungie"
	"loadout-manager/core/destiny"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *bungie.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := bungie.NewClient(bungie.Config{
		BaseURL:           srv.URL,
		APIKey:            "test-key",
		Locale:            "en",
		TimeoutSeconds:    5,
		RequestsPerSecond: 100,
		Burst:             10,
	})
	require.NoError(t, err)
	return client
}

func TestNewClient(t *testing.T) {
	t.Run("InvalidLocale", func(t *testing.T) {
		_, err := bungie.NewClient(bungie.Config{BaseURL: "https://www.bungie.net", Locale: "xx"})
		assert.Error(t, err)
	})

	t.Run("InvalidBaseURL", func(t *testing.T) {
		_, err := bungie.NewClient(bungie.Config{BaseURL: "not a url", Locale: "en"})
		assert.Error(t, err)
	})
}

func TestFetchManifestDescriptor(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/Platform/Destiny2/Manifest/", r.URL.Path)
			assert.Equal(t, "test-key", r.Header.Get("X-API-Key"))
			_, _ = w.Write([]byte(`{
				"Response": {
					"version": "123.45",
					"jsonWorldComponentContentPaths": {
						"en": {"DestinyStatDefinition": "/common/en/DestinyStatDefinition.json"},
						"fr": {"DestinyStatDefinition": "/common/fr/DestinyStatDefinition.json"}
					}
				},
				"ErrorCode": 1,
				"ErrorStatus": "Success",
				"Message": "Ok"
			}`))
		})

		desc, err := client.FetchManifestDescriptor(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "123.45", desc.Version)
		assert.Equal(t, "/common/en/DestinyStatDefinition.json", desc.ComponentPaths["DestinyStatDefinition"])
	})

	t.Run("PlatformError", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"ErrorCode": 5, "ErrorStatus": "SystemDisabled", "Message": "Maintenance"}`))
		})

		_, err := client.FetchManifestDescriptor(context.Background())
		assert.ErrorIs(t, err, destiny.ErrRemoteUnavailable)
		var apiErr *bungie.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "SystemDisabled", apiErr.ErrorStatus)
	})

	t.Run("HTTPError", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})

		_, err := client.FetchManifestDescriptor(context.Background())
		assert.ErrorIs(t, err, destiny.ErrRemoteUnavailable)
		var apiErr *bungie.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	})

	t.Run("MissingLocale", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"Response": {"version": "1", "jsonWorldComponentContentPaths": {"de": {}}}, "ErrorCode": 1}`))
		})

		_, err := client.FetchManifestDescriptor(context.Background())
		assert.ErrorIs(t, err, destiny.ErrRemoteUnavailable)
	})
}

func TestFetchComponent(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/common/en/DestinyStatDefinition.json", r.URL.Path)
			_, _ = w.Write([]byte(`{"1480404414": {"hash": 1480404414, "displayProperties": {"name": "Attack"}}}`))
		})

		data, err := client.FetchComponent(context.Background(), "DestinyStatDefinition", "/common/en/DestinyStatDefinition.json")
		require.NoError(t, err)
		assert.Equal(t, "DestinyStatDefinition", data.ComponentName)
		assert.Len(t, data.Data, 1)
		assert.Contains(t, string(data.Data["1480404414"]), "Attack")
	})

	t.Run("BadBody", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`<html>`))
		})

		_, err := client.FetchComponent(context.Background(), "DestinyStatDefinition", "/x.json")
		assert.ErrorIs(t, err, destiny.ErrRemoteUnavailable)
	})
}

func TestFetchProfile(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Platform/Destiny2/3/Profile/4611686018467284386/", r.URL.Path)
		assert.Equal(t, "100,102", r.URL.Query().Get("components"))
		assert.Equal(t, "Bearer access-token", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{
			"Response": {
				"profileInventory": {"data": {"items": [{"itemHash": 100, "itemInstanceId": "6917529", "quantity": 1}]}, "privacy": 1},
				"characters": {"data": {"2305843009": {"characterId": "2305843009", "classType": 1, "light": 1810}}}
			},
			"ErrorCode": 1,
			"ErrorStatus": "Success"
		}`))
	})

	ref := destiny.AccountRef{MembershipType: 3, MembershipID: "4611686018467284386"}
	token := &oauth2.Token{AccessToken: "access-token", TokenType: "Bearer"}

	profile, err := client.FetchProfile(context.Background(), ref,
		[]destiny.ComponentType{destiny.ComponentProfiles, destiny.ComponentProfileInventories}, token)
	require.NoError(t, err)

	require.NotNil(t, profile.ProfileInventory)
	require.Len(t, profile.ProfileInventory.Data.Items, 1)
	assert.Equal(t, uint32(100), profile.ProfileInventory.Data.Items[0].ItemHash)
	assert.Equal(t, destiny.ClassHunter, profile.Characters.Data["2305843009"].ClassType)
	assert.Nil(t, profile.CharacterEquipment)
}
