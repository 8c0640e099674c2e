package usecase

import "github.com/m-mizutani/gitfrost/pkg/domain/types"

// authorizeCreation reports whether the submitted client secret grants
// issue creation. Comparison is exact and case-sensitive. There is no open
// mode for creation: an unconfigured secret rejects every submission,
// unlike the page-level access gate which allows all when unconfigured.
func authorizeCreation(submitted, expected types.ClientSecret) bool {
	if expected == "" {
		return false
	}
	return submitted == expected
}
