package inventory

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/altheasignals/boxofports/internal/ports"
)

// File is the on-disk inventory shape. Either the Boards/Slots grid or the
// explicit Ports list must be present; when both are, the explicit list
// wins because it can describe chassis the grid cannot.
type File struct {
	// Boards is the number of boards, numbered 1..Boards.
	Boards int `yaml:"boards" json:"boards"`

	// Slots is the number of slots per board, numbered 1..Slots.
	Slots int `yaml:"slots" json:"slots"`

	// Ports lists port tokens explicitly ("1A", "2.02", ...), for devices
	// whose boards are not uniformly populated.
	Ports []string `yaml:"ports" json:"ports"`
}

// Load reads an inventory file and expands it into the full port list in
// (board, slot) order. The format follows the extension: .yaml/.yml parse
// as YAML, .json/.jsonc as comment-tolerant JSON, anything else tries YAML
// (a superset loose enough for both grid shapes).
func Load(path string) ([]ports.Port, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read inventory file: %w", err)
	}

	var file File
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), &file); err != nil {
			return nil, fmt.Errorf("cannot parse inventory file %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("cannot parse inventory file %s: %w", path, err)
		}
	}
	return file.Expand()
}

// Expand produces the ordered port list an inventory describes.
func (f File) Expand() ([]ports.Port, error) {
	if len(f.Ports) > 0 {
		out := make([]ports.Port, 0, len(f.Ports))
		for _, token := range f.Ports {
			p, err := ports.Parse(token)
			if err != nil {
				return nil, fmt.Errorf("invalid inventory port %q: %w", token, err)
			}
			out = append(out, p)
		}
		return out, nil
	}

	if f.Boards < 1 || f.Slots < 1 {
		return nil, fmt.Errorf("inventory must declare boards >= 1 and slots >= 1, or an explicit ports list")
	}
	out := make([]ports.Port, 0, f.Boards*f.Slots)
	for board := 1; board <= f.Boards; board++ {
		for slot := 1; slot <= f.Slots; slot++ {
			out = append(out, ports.Port{Board: board, Slot: slot})
		}
	}
	return out, nil
}
