package gallery

import "sort"

// A group holding exactly trimFromSize videos after sorting keeps only the
// first trimToSize of them.
const (
	trimFromSize = 6
	trimToSize   = 5
)

type groupKey struct {
	task  string
	model string
}

// GroupVideos buckets videos by (task, model) and returns the groups sorted
// by task then model. Within a group videos are ordered by iteration number,
// with the web path as tie-break.
func GroupVideos(videos []Video) []Group {
	grouped := make(map[groupKey][]Video)
	for _, v := range videos {
		key := groupKey{task: v.Task, model: v.Model}
		grouped[key] = append(grouped[key], v)
	}

	keys := make([]groupKey, 0, len(grouped))
	for key := range grouped {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].task != keys[j].task {
			return keys[i].task < keys[j].task
		}
		return keys[i].model < keys[j].model
	})

	groups := make([]Group, 0, len(keys))
	for _, key := range keys {
		members := grouped[key]
		sort.SliceStable(members, func(i, j int) bool {
			if members[i].IterNumber != members[j].IterNumber {
				return members[i].IterNumber < members[j].IterNumber
			}
			return members[i].WebPath < members[j].WebPath
		})
		if len(members) == trimFromSize {
			members = members[:trimToSize]
		}
		groups = append(groups, Group{Task: key.task, Model: key.model, Videos: members})
	}
	return groups
}
