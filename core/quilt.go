package core

// QuiltManifest is the quilt.mod.json written for Quilt loader
type QuiltManifest struct {
	SchemaVersion int                `json:"schema_version"`
	QuiltLoader   QuiltLoaderSection `json:"quilt_loader"`
}

type QuiltLoaderSection struct {
	Group                string            `json:"group"`
	ID                   string            `json:"id"`
	Version              string            `json:"version"`
	Metadata             QuiltMetadata     `json:"metadata"`
	IntermediateMappings string            `json:"intermediate_mappings"`
	Depends              []QuiltDependency `json:"depends"`
}

type QuiltMetadata struct {
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	Contributors map[string]string `json:"contributors"`
	Contact      ModContact        `json:"contact"`
	Icon         string            `json:"icon"`
}

type QuiltDependency struct {
	ID       string `json:"id"`
	Versions string `json:"versions"`
	Unless   string `json:"unless,omitempty"`
}

const (
	quiltGroup                = "com.modrinth"
	quiltIntermediateMappings = "net.fabricmc:intermediary"
	quiltResourceLoaderID     = "quilt_resource_loader"
)

func (m *QuiltManifest) Path() string {
	return QuiltManifestPath
}

func (m *QuiltManifest) Marshal() (MarshalResult, error) {
	value, err := marshalJSON(m)
	if err != nil {
		return MarshalResult{}, err
	}
	return hashedResult(value)
}
