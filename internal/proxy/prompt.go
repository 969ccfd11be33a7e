package proxy

import "fmt"

const promptTemplate = `คุณคือผู้ช่วยเขียนรายงานการทำงานภาษาไทย ช่วยปรับปรุงข้อความรายงานประจำวันนี้ให้:
- อ่านง่ายและเป็นมืออาชีพมากขึ้น
- ใช้ภาษาไทยที่สละสลวย
- คงความหมายเดิมไว้ครบถ้วน
- รักษารูปแบบ bullet points หรือ numbered list ไว้ (ถ้ามี)
- ไม่ต้องเพิ่มเนื้อหาใหม่ที่ไม่เกี่ยวข้อง

ข้อความเดิม:
%s

ตอบเฉพาะข้อความที่ปรับปรุงแล้วเท่านั้น ไม่ต้องมีคำอธิบายเพิ่มเติม`

// Prompt wraps report text in the rewriting instructions.
func Prompt(content string) string {
	return fmt.Sprintf(promptTemplate, content)
}
