package generate

import (
	"fmt"
	"path/filepath"

	"github.com/pkgsmith/pkgsmith/pkg/constants"
	"github.com/pkgsmith/pkgsmith/pkg/types"
)

// writeTests writes the test skeleton: test/runtests.jl with an empty test
// set named after the package.
func writeTests(opts Options, _ []types.Plugin, result *Result) error {
	text := fmt.Sprintf(`using %s
using Test

@testset "%s.jl" begin
    # Write your own tests here.
end`, opts.PackageName, opts.PackageName)

	rel := filepath.Join(constants.TestDir, constants.TestEntryFile)
	return write(opts, result, rel, text)
}
