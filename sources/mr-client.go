package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	modrinthApi "codeberg.org/jmansfield/go-modrinth/modrinth"
	"github.com/charmbracelet/log"

	"github.com/leocov-dev/dpwrap/core"
)

// NewModrinthClient returns a go-modrinth client that talks to baseURL
func NewModrinthClient(baseURL string) (*modrinthApi.Client, error) {
	u, err := url.Parse(strings.TrimSuffix(baseURL, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("invalid api url %q: %w", baseURL, err)
	}

	client := modrinthApi.NewClient(&http.Client{})
	client.UserAgent = core.UserAgent
	client.BaseURL = u
	return client, nil
}

// ModrinthAPI reads projects, versions, team members and game version tags from a Modrinth
// compatible API. Versions are decoded directly since the client's file type lacks file_type.
type ModrinthAPI struct {
	BaseURL string

	client *modrinthApi.Client
}

func NewModrinthAPI(baseURL string) (ModrinthAPI, error) {
	client, err := NewModrinthClient(baseURL)
	if err != nil {
		return ModrinthAPI{}, err
	}
	return ModrinthAPI{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		client:  client,
	}, nil
}

func (a ModrinthAPI) getJSON(ctx context.Context, path string, target interface{}) error {
	endpoint := a.BaseURL + path
	body, err := core.FetchBytes(ctx, endpoint, "application/json")
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("failed to parse response from %s: %w", endpoint, err)
	}
	return nil
}

// GetProject looks up a project by slug or id
func (a ModrinthAPI) GetProject(projectRef string) (core.Project, error) {
	log.Debug("looking up project", "ref", projectRef)
	project, err := a.client.Projects.Get(projectRef)
	if err != nil {
		return core.Project{}, fmt.Errorf("%w: project %s: %v", core.ErrFetchFailed, projectRef, err)
	}
	return ProjectFromModrinth(project), nil
}

// ListVersions returns every version of a project, newest first
func (a ModrinthAPI) ListVersions(ctx context.Context, projectID string) ([]ModrinthVersion, error) {
	var versions []ModrinthVersion
	err := a.getJSON(ctx, "/project/"+url.PathEscape(projectID)+"/version", &versions)
	return versions, err
}

// GetVersion looks up a single version by id
func (a ModrinthAPI) GetVersion(ctx context.Context, versionID string) (ModrinthVersion, error) {
	var version ModrinthVersion
	err := a.getJSON(ctx, "/version/"+url.PathEscape(versionID), &version)
	return version, err
}

// GetMembers returns the credited team members of a project
func (a ModrinthAPI) GetMembers(projectID string) ([]core.Member, error) {
	log.Debug("looking up team", "project", projectID)
	team, err := a.client.Teams.GetProjectTeam(projectID)
	if err != nil {
		return nil, fmt.Errorf("%w: team of %s: %v", core.ErrFetchFailed, projectID, err)
	}

	result := make([]core.Member, 0, len(team))
	for _, m := range team {
		var name string
		if m.User != nil {
			name = deref(m.User.Username)
		}
		result = append(result, core.Member{Name: name, Role: deref(m.Role)})
	}
	return result, nil
}

// GetGameVersions returns every game version Modrinth knows about as a reference index
func (a ModrinthAPI) GetGameVersions() (core.GameVersionIndex, error) {
	log.Debug("looking up game versions")
	tags, err := a.client.Tags.GetGameVersions()
	if err != nil {
		return nil, fmt.Errorf("%w: game versions: %v", core.ErrFetchFailed, err)
	}

	versions := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag.Version != nil {
			versions = append(versions, *tag.Version)
		}
	}
	return core.NewestFirstIndex(versions), nil
}
