package docx

// Static package parts. These never vary between documents, so they
// are kept as literals rather than assembled at run time.

// contentTypesXML declares the MIME type of every part in the archive.
const contentTypesXML = xmlHeader +
	`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>` +
	`</Types>`

// packageRelsXML points the package root at the main document part.
const packageRelsXML = xmlHeader +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`</Relationships>`

// documentRelsXML wires the document part to its style sheet.
const documentRelsXML = xmlHeader +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>` +
	`</Relationships>`

// stylesXML defines the paragraph styles the writer references:
// Normal (the default), Heading 2, Heading 3, List Bullet, and
// List Number. Heading sizes here are fallbacks; runs emitted by the
// layout engine carry explicit sizes that take precedence. The list
// styles indent the paragraph but attach no numbering: the marker
// glyph is part of the run text, so a style-drawn marker would show
// the reader two.
const stylesXML = xmlHeader +
	`<w:styles xmlns:w="` + nsW + `">` +
	`<w:docDefaults>` +
	`<w:rPrDefault><w:rPr>` +
	`<w:rFonts w:ascii="Arial" w:hAnsi="Arial" w:eastAsia="Arial" w:cs="Arial"/>` +
	`<w:sz w:val="22"/><w:szCs w:val="22"/>` +
	`</w:rPr></w:rPrDefault>` +
	`<w:pPrDefault><w:pPr><w:spacing w:after="160" w:line="259" w:lineRule="auto"/></w:pPr></w:pPrDefault>` +
	`</w:docDefaults>` +
	`<w:style w:type="paragraph" w:default="1" w:styleId="Normal">` +
	`<w:name w:val="Normal"/>` +
	`</w:style>` +
	`<w:style w:type="paragraph" w:styleId="Heading2">` +
	`<w:name w:val="heading 2"/>` +
	`<w:basedOn w:val="Normal"/>` +
	`<w:next w:val="Normal"/>` +
	`<w:pPr><w:keepNext/><w:spacing w:before="200" w:after="0"/><w:outlineLvl w:val="1"/></w:pPr>` +
	`<w:rPr><w:b/><w:sz w:val="26"/><w:szCs w:val="26"/></w:rPr>` +
	`</w:style>` +
	`<w:style w:type="paragraph" w:styleId="Heading3">` +
	`<w:name w:val="heading 3"/>` +
	`<w:basedOn w:val="Normal"/>` +
	`<w:next w:val="Normal"/>` +
	`<w:pPr><w:keepNext/><w:spacing w:before="200" w:after="0"/><w:outlineLvl w:val="2"/></w:pPr>` +
	`<w:rPr><w:b/><w:sz w:val="24"/><w:szCs w:val="24"/></w:rPr>` +
	`</w:style>` +
	`<w:style w:type="paragraph" w:styleId="ListBullet">` +
	`<w:name w:val="List Bullet"/>` +
	`<w:basedOn w:val="Normal"/>` +
	`<w:pPr><w:ind w:left="360"/></w:pPr>` +
	`</w:style>` +
	`<w:style w:type="paragraph" w:styleId="ListNumber">` +
	`<w:name w:val="List Number"/>` +
	`<w:basedOn w:val="Normal"/>` +
	`<w:pPr><w:ind w:left="360"/></w:pPr>` +
	`</w:style>` +
	`</w:styles>`
