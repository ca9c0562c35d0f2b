package reverse

import "github.com/Cyclone1070/revf/internal/tool/fileinfo"

type ReversePathRequest struct {
	Path      string
	Recursive bool
}

func (r *ReversePathRequest) Validate() error {
	if r.Path == "" {
		return ErrPathRequired
	}
	return nil
}

type ReversePathResponse struct {
	Path               string
	Type               fileinfo.Type
	FilesReversed      int
	DirectoriesVisited int
	BytesReversed      int64
}
