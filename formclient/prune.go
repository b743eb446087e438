package formclient

// Field keys belonging to exactly one project type. Payload maps are
// pruned against these sets so a QVO record never carries DT keys and
// vice versa. Pruned keys are absent from the result, not null.
var qvoOnlyKeys = []string{
	"total_duration_minutes",
	"language_pair",
	"target_language_dialect",
	"voice_match_needed",
	"lip_match_needed",
	"sound_balancing_needed",
	"premix_files_shared",
	"me_files_shared",
	"high_res_video_shared",
	"caption_type",
	"on_screen_editing_required",
	"deliverable",
	"voice_over_gender",
}

var dtOnlyKeys = []string{
	"source_word_count",
	"source_languages",
	"target_languages",
	"formatting_required",
}

// PruneForVariant returns a copy of payload with every key belonging to
// the other project type removed. Common keys pass through untouched.
// Unknown project types prune both variant groups.
func PruneForVariant(payload map[string]any, projectType string) map[string]any {
	var drop []string
	switch projectType {
	case "QVO":
		drop = dtOnlyKeys
	case "DT":
		drop = qvoOnlyKeys
	default:
		drop = append(append([]string{}, qvoOnlyKeys...), dtOnlyKeys...)
	}

	pruned := make(map[string]any, len(payload))
	for k, v := range payload {
		pruned[k] = v
	}
	for _, k := range drop {
		delete(pruned, k)
	}
	return pruned
}
