// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package slides

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DefaultLectureNumber is used when neither the annotation nor the
// filename carries a lecture number.
const DefaultLectureNumber = "00"

var (
	// lectureAnnotation matches the code-chunk line lecture_number = "3".
	lectureAnnotation = regexp.MustCompile(`^lecture_number\s*=\s*"(\d+)"`)
	lectureInStem     = regexp.MustCompile(`L(\d+)`)
)

// LectureNumberFromText looks for a lecture_number annotation at the start
// of one of the first maxLines lines of content.
func LectureNumberFromText(content string, maxLines int) (string, bool) {
	if maxLines <= 0 {
		return "", false
	}
	lines := strings.SplitN(content, "\n", maxLines+1)
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	for _, line := range lines {
		if m := lectureAnnotation.FindStringSubmatch(line); m != nil {
			return padLectureNumber(m[1]), true
		}
	}
	return "", false
}

// LectureNumberFromStem extracts the digits following an "L" in a
// filename stem, e.g. "L07-vectors" gives "07".
func LectureNumberFromStem(stem string) (string, bool) {
	m := lectureInStem.FindStringSubmatch(stem)
	if m == nil {
		return "", false
	}
	return padLectureNumber(m[1]), true
}

// ResolveLectureNumber returns the annotated lecture number, falling back
// to the filename and then to DefaultLectureNumber.
func ResolveLectureNumber(content, stem string, maxLines int) string {
	if n, ok := LectureNumberFromText(content, maxLines); ok {
		return n
	}
	if n, ok := LectureNumberFromStem(stem); ok {
		return n
	}
	return DefaultLectureNumber
}

// padLectureNumber normalises a digit string to at least two digits.
func padLectureNumber(digits string) string {
	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		// Too long for uint64; keep the digits without leading zeros.
		return strings.TrimLeft(digits, "0")
	}
	return fmt.Sprintf("%02d", n)
}
