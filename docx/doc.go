// Package docx serializes reconstructed documents to the DOCX format.
//
// A DOCX file is a ZIP archive of WordprocessingML parts. The writer
// emits the minimal part set a word processor needs: the content-type
// manifest, package relationships, the document body, and a style
// sheet.
//
// Styling follows the document model one-to-one. Headings map to the
// built-in Heading 2 / Heading 3 styles, list paragraphs to List
// Bullet / List Number, and everything else to Normal. List markers
// live in the run text itself; the list styles carry no numbering, so
// each item shows exactly one marker. Run fonts are
// pinned on every script slot (ascii, hAnsi, eastAsia, cs) so Cyrillic
// and Latin text render in the same typeface.
package docx
