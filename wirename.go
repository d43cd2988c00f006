package vimfault

import "strings"

// localWireName reduces a received wire name to its local part.
//
// Accepted forms are "FileFaultFault", "vim25:FileFaultFault" (the prefix is
// dropped because it cannot be resolved without the enclosing document) and
// "{urn:vim25}FileFaultFault". Clark notation naming any other namespace
// reports ok == false. Matching on the result is case-sensitive.
func localWireName(wireName string) (local string, ok bool) {
	name := strings.TrimSpace(wireName)
	if strings.HasPrefix(name, "{") {
		end := strings.IndexByte(name, '}')
		if end < 0 {
			return "", false
		}
		if name[1:end] != Namespace {
			return "", false
		}
		name = name[end+1:]
	} else if i := strings.LastIndexByte(name, ':'); i >= 0 {
		name = name[i+1:]
	}
	if name == "" {
		return "", false
	}
	return name, true
}
