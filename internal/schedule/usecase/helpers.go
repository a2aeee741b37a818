package usecase

import "branchboard/internal/model"

func taskIDs(tasks []model.Task) []string {
	if len(tasks) == 0 {
		return nil
	}
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return ids
}

// reconcile keeps the optimizer output to tasks from the input set, each once.
// Input tasks the optimizer left out are returned as blocked.
func reconcile(tasks, out []model.Task) (ordered, blocked []model.Task) {
	byID := make(map[string]model.Task, len(tasks))
	for _, t := range tasks {
		if _, ok := byID[t.ID]; !ok {
			byID[t.ID] = t
		}
	}

	placed := make(map[string]bool, len(out))
	ordered = make([]model.Task, 0, len(out))
	for _, t := range out {
		orig, ok := byID[t.ID]
		if !ok || placed[t.ID] {
			continue
		}
		placed[t.ID] = true
		ordered = append(ordered, orig)
	}

	for _, t := range tasks {
		if !placed[t.ID] {
			blocked = append(blocked, t)
			placed[t.ID] = true
		}
	}
	return ordered, blocked
}
