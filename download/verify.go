package download

import "fmt"

// VerifyFiles compares the content hashes of two files and returns
// ErrConsistency when they differ.
func VerifyFiles(pathA, pathB string) error {
	hashA, err := GetMD5Hash(pathA)
	if err != nil {
		return fmt.Errorf("hashing %s: %w", pathA, err)
	}

	hashB, err := GetMD5Hash(pathB)
	if err != nil {
		return fmt.Errorf("hashing %s: %w", pathB, err)
	}

	if hashA != hashB {
		return fmt.Errorf("%w: %s (%s) vs %s (%s)", ErrConsistency, pathA, hashA, pathB, hashB)
	}

	return nil
}
