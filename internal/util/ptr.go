package util

func StringPtr(v string) *string { return &v }

func IntPtr(v int) *int { return &v }
