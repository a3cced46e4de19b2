package webmdemux

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextClusterStartResolvesFollowingCluster(t *testing.T) {
	cues := []CuePoint{
		{Time: 0, Track: 1, ClusterPosition: 100},
		{Time: 500, Track: 1, ClusterPosition: 300},
		{Time: 1000, Track: 1, ClusterPosition: 600},
	}
	require.EqualValues(t, 300, *nextClusterStart(cues, 100))
	require.EqualValues(t, 600, *nextClusterStart(cues, 300))
	require.Nil(t, nextClusterStart(cues, 600))
}

func TestNextClusterStartIgnoresDuplicateTrackEntries(t *testing.T) {
	// Two tracks cue into the same clusters; duplicates shouldn't confuse
	// "next" resolution.
	cues := []CuePoint{
		{Time: 0, Track: 1, ClusterPosition: 100},
		{Time: 0, Track: 2, ClusterPosition: 100},
		{Time: 500, Track: 1, ClusterPosition: 300},
		{Time: 500, Track: 2, ClusterPosition: 300},
	}
	require.EqualValues(t, 300, *nextClusterStart(cues, 100))
	require.Nil(t, nextClusterStart(cues, 300))
}
