package document

import "fmt"

const extractionPrompt = `EXTRACT TEXT FROM MEDICAL PRESCRIPTION/DOCUMENT

=== STRICT FORMATTING REQUIREMENTS ===
✓ Use ONLY bullet points (•) for main items
✓ Use ONLY dashes (-) for sub-items
✓ Each point = ONE LINE maximum
✓ NO paragraphs, NO long sentences
✓ Write "Not visible" if text unclear
✓ Follow EXACT template below

=== DO NOT DO ===
✗ No paragraphs or multiple sentences
✗ No combining multiple points into one
✗ No free-form text descriptions

=== OUTPUT TEMPLATE ===

**PATIENT INFO:**
• Name: [Extract name]
• Age: [Extract age or "Not visible"]
• Gender: [M/F or "Not visible"]
• ID: [Patient ID or "Not visible"]

**DOCTOR INFO:**
• Doctor: [Doctor name or "Not visible"]
• Hospital/Clinic: [Facility name or "Not visible"]
• Date: [Prescription date or "Not visible"]

**MEDICATIONS:**
• **Medicine 1:**
  - Name: [Medicine name]
  - Strength: [Dosage strength]
  - Quantity: [Amount to take]
  - Frequency: [When to take]
  - Duration: [How many days]
  - Instructions: [Before/after food etc.]

• **Medicine 2:**
  - Name: [Medicine name]
  - Strength: [Dosage strength]
  - Quantity: [Amount to take]
  - Frequency: [When to take]
  - Duration: [How many days]
  - Instructions: [Before/after food etc.]

[Continue for ALL visible medicines]

**ADDITIONAL NOTES:**
• Diagnosis: [If mentioned or "Not visible"]
• Allergies: [If mentioned or "Not visible"]
• Special Instructions: [Any other notes or "Not visible"]
• Next Visit: [If scheduled or "Not visible"]

REMEMBER: ONE LINE PER POINT. NO PARAGRAPHS.`

func suggestionsPrompt(extractedText string) string {
	return fmt.Sprintf(`Based on this medical prescription/document, provide:

1. **Medicine Schedule**: Clear timing and dosage instructions for each medicine
2. **7-Day Diet Plan**: Detailed daily meal suggestions that complement the treatment
3. **General Health Tips**: Lifestyle recommendations for faster recovery
4. **Precautions**: Important things to avoid or be careful about

Medical Document Text:
%s

Please provide practical, safe, and general advice. Always recommend consulting with healthcare professionals for personalized medical guidance.

Format the response in a clear, organized manner with proper headings and bullet points.`, extractedText)
}
