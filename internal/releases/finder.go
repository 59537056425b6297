// Copyright (c) 2025 Steve Taranto staranto@gmail.com.
// SPDX-License-Identifier: Apache-2.0

package releases

import (
	"errors"

	"github.com/Masterminds/semver/v3"
	"github.com/apex/log"
)

// ErrNoMatch is returned when no release satisfies the request.
var ErrNoMatch = errors.New("could not find matching release")

// Find selects the release matching the version/build request.  The feed is
// ordered newest first, so with neither a version nor a build the first
// entry (the latest release) wins.  When a version is present the build is
// ignored entirely; version always takes precedence over build.
func Find(releases []Release, version, build string) (Release, error) {
	if len(releases) == 0 {
		return Release{}, ErrNoMatch
	}

	if version == "" && build == "" {
		return releases[0], nil
	}

	for _, r := range releases {
		if version != "" {
			if r.Version == version {
				return r, nil
			}
			continue
		}
		if r.Build == build {
			return r, nil
		}
	}

	return Release{}, ErrNoMatch
}

// Since filters the list down to releases whose version is >= the given
// floor. An unparseable floor keeps the whole list; unparseable entry
// versions are skipped with a debug log rather than failing the query.
// JetBrains versions are 2024.1 / 2024.1.2 shaped and parse fine in
// practice.
func Since(releases []Release, floor string) []Release {
	if floor == "" {
		return releases
	}

	fv, err := semver.NewVersion(floor)
	if err != nil {
		log.Debugf("unparseable --since version %q: %v", floor, err)
		return releases
	}

	//nolint:prealloc
	var result []Release
	for _, r := range releases {
		rv, err := semver.NewVersion(r.Version)
		if err != nil {
			log.Debugf("skipping unparseable release version %q: %v", r.Version, err)
			continue
		}
		if !rv.LessThan(fv) {
			result = append(result, r)
		}
	}

	return result
}
