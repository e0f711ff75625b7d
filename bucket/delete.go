package bucket

import "github.com/arloliu/binstore/section"

// Delete reads every entry from path, removes each value in toRemove from
// every key's value set, drops any key whose set becomes empty, and writes
// the result to outputPath. Like Merge, this is implemented as scan-then-
// Create rather than an in-place rewrite: a bucket file is immutable once
// written, so deleting from it always means producing a new file.
func Delete(path, outputPath string, toRemove []section.Value, opts ...CreateOption) error {
	b, err := Open(path)
	if err != nil {
		return err
	}
	defer b.Close()

	entries, err := b.allEntries()
	if err != nil {
		return err
	}

	remove := make(map[section.Value]struct{}, len(toRemove))
	for _, v := range toRemove {
		remove[v] = struct{}{}
	}

	result := make(map[section.HashedKey][]section.Value, len(entries))
	for _, entry := range entries {
		values, err := b.readBlobAt(entry.Offset)
		if err != nil {
			return err
		}

		kept := values[:0]
		for _, v := range values {
			if _, drop := remove[v]; !drop {
				kept = append(kept, v)
			}
		}
		if len(kept) > 0 {
			result[entry.Key] = kept
		}
	}

	return Create(outputPath, result, opts...)
}
