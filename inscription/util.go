package inscription

import "strconv"

func itoa(i int) string { return strconv.Itoa(i) }

func joinDiagnostics(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += "; "
		}
		out += p
	}
	return out
}
