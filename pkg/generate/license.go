package generate

import (
	"fmt"
	"time"

	"github.com/pkgsmith/pkgsmith/pkg/constants"
	"github.com/pkgsmith/pkgsmith/pkg/errors"
	"github.com/pkgsmith/pkgsmith/pkg/types"
)

// writeLicense writes LICENSE: a copyright line naming the current year and
// the configured authors, a blank line, then the license body. Skipped when
// no license is configured.
func writeLicense(opts Options, _ []types.Plugin, result *Result) error {
	if opts.Config.License == "" {
		return nil
	}
	if opts.Licenses == nil {
		return errors.Newf(errors.ErrInvalidInput,
			"license %s is configured but no license store was provided", opts.Config.License)
	}

	body, err := opts.Licenses.Text(opts.Config.License)
	if err != nil {
		return errors.Wrapf(err, errors.ErrLicenseUnknown,
			"reading license %s", opts.Config.License)
	}

	text := fmt.Sprintf("Copyright (c) %d %s\n\n%s",
		time.Now().Year(), opts.Config.Authors, body)
	return write(opts, result, constants.LicenseFile, text)
}
