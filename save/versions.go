package save

var versionNames = map[int]string{
	102040: "0.20",
	11270:  "0.19",
	11210:  "0.18a",
	11200:  "0.18",
	11130:  "0.17",
	11060:  "0.16",
	8290:   "0.15",
	8081:   "0.14b",
	8080:   "0.14a",
	8070:   "0.14",
	8050:   "0.13",
	7130:   "0.12",
}

// VersionName returns the release name of a save version.
func VersionName(v int) string {
	if name, ok := versionNames[v]; ok {
		return name
	}
	return "unknown"
}
