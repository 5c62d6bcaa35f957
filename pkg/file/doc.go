// Package file inspects uploaded multipart files for the file/media validator.
//
// Content type detection sniffs the first 512 bytes with http.DetectContentType
// instead of trusting the client-supplied header or the extension; the
// extension is only consulted when sniffing yields nothing useful.
//
//	info, err := file.Inspect(fh)
//	if err != nil {
//	    return err
//	}
//	if info.Kind != file.KindImage {
//	    // reject
//	}
package file
