package core

// FabricManifest is the fabric.mod.json written for Fabric loader
type FabricManifest struct {
	SchemaVersion int               `json:"schemaVersion"`
	ID            string            `json:"id"`
	Version       string            `json:"version"`
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	Authors       []string          `json:"authors"`
	Contact       ModContact        `json:"contact"`
	License       string            `json:"license"`
	Icon          string            `json:"icon"`
	Environment   string            `json:"environment"`
	Depends       map[string]string `json:"depends"`
}

// ModContact is shared by the Fabric and Quilt manifests
type ModContact struct {
	Homepage string `json:"homepage"`
	Sources  string `json:"sources,omitempty"`
	Issues   string `json:"issues,omitempty"`
}

const fabricResourceLoaderID = "fabric-resource-loader-v0"

func (m *FabricManifest) Path() string {
	return FabricManifestPath
}

func (m *FabricManifest) Marshal() (MarshalResult, error) {
	value, err := marshalJSON(m)
	if err != nil {
		return MarshalResult{}, err
	}
	return hashedResult(value)
}
