package offroadcfg

import jsoniter "github.com/json-iterator/go"

// wireOptions mirrors Options' field set in lower-case JSON form, so callers
// can ship tolerance overrides as plain config files without exposing the
// exported Go field names as the wire format.
type wireOptions struct {
	MergeTol     float64 `json:"merge_tol"`
	VertexTol    float64 `json:"vertex_tol"`
	ConnectTol   float64 `json:"connect_tol"`
	Backend      string  `json:"backend"`
	GridCellSize float64 `json:"grid_cell_size"`
}

// UnmarshalOptions decodes a JSON document into Options, starting from
// Default() so an omitted field keeps its default rather than zeroing out.
// Unset tolerances and an unset grid cell size are left at the Default
// values; Backend, if present, must be "flat" or "grid".
func UnmarshalOptions(data []byte) (Options, error) {
	opts := Default()
	if len(data) == 0 {
		return opts, nil
	}

	var w wireOptions
	w.MergeTol = opts.MergeTol
	w.VertexTol = opts.VertexTol
	w.ConnectTol = opts.ConnectTol
	w.GridCellSize = opts.GridCellSize

	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, &w); err != nil {
		return Options{}, ErrDecodeOptions
	}

	opts.MergeTol = w.MergeTol
	opts.VertexTol = w.VertexTol
	opts.ConnectTol = w.ConnectTol
	opts.GridCellSize = w.GridCellSize

	switch w.Backend {
	case "", "grid":
		opts.Backend = BackendGrid
	case "flat":
		opts.Backend = BackendFlat
	default:
		return Options{}, ErrUnknownBackend
	}

	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}
