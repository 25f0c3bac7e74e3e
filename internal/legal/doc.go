// Package legal serves the legal documents linked from the admin pages,
// such as the data protection notice in the footer.
//
// Documents live either on disk (DiskStore) or in an S3 bucket (S3Store).
// Both stores only hand out plain PDF file names; anything that looks like a
// path is rejected with ErrInvalidName before the backend is touched.
package legal
