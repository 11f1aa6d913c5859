package catalog

import "sync"

var (
	techniques     []*Technique
	onceTechniques sync.Once
)

// Techniques returns the shipped catalog in declaration order. The slice is
// built once and shared; callers must not modify it.
func Techniques() []*Technique {
	onceTechniques.Do(func() {
		techniques = shippedTechniques()
	})
	return techniques
}

func shippedTechniques() []*Technique {
	return []*Technique{
		// Submissions
		{
			ID:                "armbar",
			Name:              "Armbar",
			Aliases:           []string{"Juji Gatame", "Arm Bar"},
			Category:          CategorySubmission,
			Subcategory:       ptr(SubJointLock),
			Difficulty:        Fundamental,
			Description:       "Hyperextends the elbow by controlling the arm between the legs and lifting the hips against the joint.",
			KeyPoints:         []string{"Pinch the knees together", "Thumb of the trapped arm points up", "Lift the hips slowly"},
			StartingPosition:  ptr(PositionMultiple),
			GiLegal:           true,
			NoGiLegal:         true,
			Points:            ptr(0),
			RelatedTechniques: []string{"triangle-choke", "omoplata", "kimura"},
		},
		{
			ID:                "rear-naked-choke",
			Name:              "Rear-Naked Choke",
			Aliases:           []string{"RNC", "Mata Leão", "Hadaka Jime"},
			Category:          CategorySubmission,
			Subcategory:       ptr(SubChoke),
			Difficulty:        Fundamental,
			Description:       "Blood choke from the back that compresses both carotid arteries with the forearm and biceps.",
			KeyPoints:         []string{"Elbow under the chin", "Hand behind the head", "Squeeze the elbows together"},
			StartingPosition:  ptr(PositionBackControl),
			GiLegal:           true,
			NoGiLegal:         true,
			Points:            ptr(0),
			RelatedTechniques: []string{"bow-and-arrow-choke", "seatbelt-control"},
		},
		{
			ID:                "triangle-choke",
			Name:              "Triangle Choke",
			Aliases:           []string{"Sankaku Jime", "Triangle"},
			Category:          CategorySubmission,
			Subcategory:       ptr(SubChoke),
			Difficulty:        Fundamental,
			Description:       "Leg choke that traps the opponent's head and one arm inside a figure-four of the legs.",
			KeyPoints:         []string{"Cut the angle", "Pull the head down", "Lock the figure-four behind the knee"},
			StartingPosition:  ptr(PositionClosedGuard),
			GiLegal:           true,
			NoGiLegal:         true,
			Points:            ptr(0),
			RelatedTechniques: []string{"armbar", "omoplata"},
		},
		{
			ID:                "kimura",
			Name:              "Kimura",
			Aliases:           []string{"Ude Garami", "Double Wristlock"},
			Category:          CategorySubmission,
			Subcategory:       ptr(SubJointLock),
			Difficulty:        Fundamental,
			Description:       "Shoulder lock using a figure-four grip on the wrist to rotate the arm behind the back.",
			KeyPoints:         []string{"Grip the wrist first", "Keep the elbow tight to the body", "Rotate toward the head"},
			StartingPosition:  ptr(PositionMultiple),
			GiLegal:           true,
			NoGiLegal:         true,
			Points:            ptr(0),
			RelatedTechniques: []string{"americana", "hip-bump-sweep"},
		},
		{
			ID:                "americana",
			Name:              "Americana",
			Aliases:           []string{"Keylock", "Paintbrush"},
			Category:          CategorySubmission,
			Subcategory:       ptr(SubJointLock),
			Difficulty:        Fundamental,
			Description:       "Shoulder lock from top position that bends the arm upward into an L and slides the wrist toward the hips.",
			KeyPoints:         []string{"Pin the wrist to the mat", "Elbow at a right angle", "Lift the elbow while sliding the wrist"},
			StartingPosition:  ptr(PositionSideControl),
			GiLegal:           true,
			NoGiLegal:         true,
			Points:            ptr(0),
			RelatedTechniques: []string{"kimura"},
		},
		{
			ID:                "guillotine-choke",
			Name:              "Guillotine Choke",
			Aliases:           []string{"Guillotine", "Mae Hadaka Jime"},
			Category:          CategorySubmission,
			Subcategory:       ptr(SubChoke),
			Difficulty:        Fundamental,
			Description:       "Front headlock choke that wraps the neck and lifts the forearm into the throat.",
			KeyPoints:         []string{"Blade of the wrist under the chin", "Close the guard or walk the feet", "Arch back and lift"},
			StartingPosition:  ptr(PositionStanding),
			GiLegal:           true,
			NoGiLegal:         true,
			Points:            ptr(0),
			RelatedTechniques: []string{"darce-choke", "anaconda-choke"},
		},
		{
			ID:                "cross-collar-choke",
			Name:              "Cross Collar Choke",
			Aliases:           []string{"Juji Jime", "X Choke"},
			Category:          CategorySubmission,
			Subcategory:       ptr(SubChoke),
			Difficulty:        Fundamental,
			Description:       "Gi choke using deep opposite collar grips to pull the wrists across the sides of the neck.",
			KeyPoints:         []string{"First grip as deep as possible", "Second grip palm down or palm up", "Pull elbows to the mat"},
			StartingPosition:  ptr(PositionClosedGuard),
			GiLegal:           true,
			NoGiLegal:         false,
			Points:            ptr(0),
			RelatedTechniques: []string{"ezekiel-choke"},
		},
		{
			ID:                "bow-and-arrow-choke",
			Name:              "Bow and Arrow Choke",
			Category:          CategorySubmission,
			Subcategory:       ptr(SubChoke),
			Difficulty:        Intermediate,
			Description:       "Gi choke from the back using a deep collar grip and a pants grip to stretch the opponent like a bow.",
			KeyPoints:         []string{"Deep collar grip with the top hand", "Grab the far knee or pants", "Extend the body away"},
			StartingPosition:  ptr(PositionBackControl),
			GiLegal:           true,
			NoGiLegal:         false,
			Points:            ptr(0),
			RelatedTechniques: []string{"rear-naked-choke"},
		},
		{
			ID:                "ezekiel-choke",
			Name:              "Ezekiel Choke",
			Aliases:           []string{"Sode Guruma Jime", "Sleeve Choke"},
			Category:          CategorySubmission,
			Subcategory:       ptr(SubChoke),
			Difficulty:        Intermediate,
			Description:       "Choke that uses one's own sleeve as an anchor while driving the opposite blade of the hand across the throat.",
			KeyPoints:         []string{"Grip inside your own sleeve", "Blade of the hand across the throat", "Hide the choking arm behind the head"},
			StartingPosition:  ptr(PositionMount),
			GiLegal:           true,
			NoGiLegal:         true,
			Points:            ptr(0),
			RelatedTechniques: []string{"cross-collar-choke"},
		},
		{
			ID:                "omoplata",
			Name:              "Omoplata",
			Aliases:           []string{"Ashi Sankaku Garami"},
			Category:          CategorySubmission,
			Subcategory:       ptr(SubJointLock),
			Difficulty:        Intermediate,
			Description:       "Shoulder lock applied with the legs, rotating the opponent's arm while controlling the hips.",
			KeyPoints:         []string{"Swing the leg over the shoulder", "Sit up and grab the belt or hip", "Lean forward slowly"},
			StartingPosition:  ptr(PositionClosedGuard),
			GiLegal:           true,
			NoGiLegal:         true,
			Points:            ptr(0),
			RelatedTechniques: []string{"triangle-choke", "armbar"},
		},
		{
			ID:                "darce-choke",
			Name:              "D'Arce Choke",
			Aliases:           []string{"Brabo Choke", "Darce"},
			Category:          CategorySubmission,
			Subcategory:       ptr(SubChoke),
			Difficulty:        Intermediate,
			Description:       "Arm-in choke threaded under the neck and arm, finished with a figure-four behind the opponent's shoulder.",
			KeyPoints:         []string{"Thread the arm deep under the armpit", "Lock the figure-four", "Sprawl and squeeze"},
			StartingPosition:  ptr(PositionHalfGuard),
			GiLegal:           true,
			NoGiLegal:         true,
			Points:            ptr(0),
			RelatedTechniques: []string{"anaconda-choke", "guillotine-choke"},
		},
		{
			ID:                "anaconda-choke",
			Name:              "Anaconda Choke",
			Category:          CategorySubmission,
			Subcategory:       ptr(SubChoke),
			Difficulty:        Intermediate,
			Description:       "Arm-in front headlock choke finished by gator-rolling onto the shoulder.",
			KeyPoints:         []string{"Arm under the neck and through", "Lock the grip before rolling", "Roll toward the trapped arm"},
			StartingPosition:  ptr(PositionTurtle),
			GiLegal:           true,
			NoGiLegal:         true,
			Points:            ptr(0),
			RelatedTechniques: []string{"darce-choke"},
		},
		{
			ID:                "arm-triangle",
			Name:              "Arm Triangle Choke",
			Aliases:           []string{"Kata Gatame", "Head and Arm Choke"},
			Category:          CategorySubmission,
			Subcategory:       ptr(SubChoke),
			Difficulty:        Fundamental,
			Description:       "Choke using the opponent's own shoulder to close the carotid on one side of the neck.",
			KeyPoints:         []string{"Push the arm across the face", "Head beside theirs", "Walk to the side and drop the hips"},
			StartingPosition:  ptr(PositionMount),
			EndingPosition:    ptr(PositionSideControl),
			GiLegal:           true,
			NoGiLegal:         true,
			Points:            ptr(0),
			RelatedTechniques: []string{"darce-choke"},
		},
		{
			ID:                "straight-ankle-lock",
			Name:              "Straight Ankle Lock",
			Aliases:           []string{"Achilles Lock", "Ashi Hishigi"},
			Category:          CategorySubmission,
			Subcategory:       ptr(SubLegLock),
			Difficulty:        Fundamental,
			Description:       "Foot lock that levers the Achilles tendon with the forearm while extending the ankle.",
			KeyPoints:         []string{"Forearm bone under the Achilles", "Foot trapped in the armpit", "Arch back with the chest up"},
			StartingPosition:  ptr(PositionOpenGuard),
			GiLegal:           true,
			NoGiLegal:         true,
			Points:            ptr(0),
			RelatedTechniques: []string{"heel-hook", "kneebar"},
		},
		{
			ID:                "heel-hook",
			Name:              "Heel Hook",
			Aliases:           []string{"Inside Heel Hook", "Outside Heel Hook"},
			Category:          CategorySubmission,
			Subcategory:       ptr(SubLegLock),
			Difficulty:        Advanced,
			Description:       "Rotational leg lock that torques the knee by turning the heel, usually from an inside or outside ashi garami.",
			KeyPoints:         []string{"Control the knee line", "Heel in the crook of the elbow", "Rotate with the whole body"},
			StartingPosition:  ptr(PositionOpenGuard),
			GiLegal:           false,
			NoGiLegal:         true,
			Points:            ptr(0),
			BeltRestrictions:  ptr("Brown and black belt only in no-gi under IBJJF rules"),
			RelatedTechniques: []string{"straight-ankle-lock", "toe-hold"},
		},
		{
			ID:                "kneebar",
			Name:              "Kneebar",
			Aliases:           []string{"Hiza Juji Gatame"},
			Category:          CategorySubmission,
			Subcategory:       ptr(SubLegLock),
			Difficulty:        Advanced,
			Description:       "Hyperextends the knee by isolating the leg between the thighs and using the hips as a fulcrum.",
			KeyPoints:         []string{"Hips above the knee", "Squeeze the knees together", "Pull the foot to the shoulder"},
			StartingPosition:  ptr(PositionMultiple),
			GiLegal:           true,
			NoGiLegal:         true,
			Points:            ptr(0),
			BeltRestrictions:  ptr("Brown and black belt only under IBJJF rules"),
			RelatedTechniques: []string{"straight-ankle-lock"},
		},
		{
			ID:                "toe-hold",
			Name:              "Toe Hold",
			Category:          CategorySubmission,
			Subcategory:       ptr(SubLegLock),
			Difficulty:        Advanced,
			Description:       "Figure-four foot lock that rotates the ankle inward by cranking the toes toward the hip.",
			KeyPoints:         []string{"Grip the blade of the foot", "Figure-four behind the ankle", "Rotate, do not pull"},
			StartingPosition:  ptr(PositionMultiple),
			GiLegal:           true,
			NoGiLegal:         true,
			Points:            ptr(0),
			BeltRestrictions:  ptr("Brown and black belt only under IBJJF rules"),
			RelatedTechniques: []string{"heel-hook"},
		},
		{
			ID:               "wrist-lock",
			Name:             "Wrist Lock",
			Aliases:          []string{"Kote Gaeshi"},
			Category:         CategorySubmission,
			Subcategory:      ptr(SubJointLock),
			Difficulty:       Intermediate,
			Description:      "Joint lock that flexes the wrist toward the forearm, often available when the opponent posts a hand.",
			KeyPoints:        []string{"Trap the hand against the chest", "Apply slowly"},
			StartingPosition: ptr(PositionMultiple),
			GiLegal:          true,
			NoGiLegal:        true,
			Points:           ptr(0),
			BeltRestrictions: ptr("Not allowed for white belts in some rule sets"),
		},
		{
			ID:               "calf-slicer",
			Name:             "Calf Slicer",
			Category:         CategorySubmission,
			Subcategory:      ptr(SubCompression),
			Difficulty:       Advanced,
			Description:      "Compression lock that wedges the shin behind the knee and folds the leg over it.",
			KeyPoints:        []string{"Shin deep behind the knee", "Pull the ankle toward the buttocks"},
			StartingPosition: ptr(PositionBackControl),
			GiLegal:          true,
			NoGiLegal:        true,
			Points:           ptr(0),
			BeltRestrictions: ptr("Brown and black belt only under IBJJF rules"),
		},
		{
			ID:               "north-south-choke",
			Name:             "North-South Choke",
			Category:         CategorySubmission,
			Subcategory:      ptr(SubChoke),
			Difficulty:       Advanced,
			Description:      "Arm-in choke from north-south, closing the neck with the biceps and sprawling the hips.",
			KeyPoints:        []string{"Armpit over the chin", "Drop the hips to the mat", "Turn the head toward their legs"},
			StartingPosition: ptr(PositionNorthSouth),
			GiLegal:          true,
			NoGiLegal:        true,
			Points:           ptr(0),
		},
		{
			ID:                "baseball-bat-choke",
			Name:              "Baseball Bat Choke",
			Category:          CategorySubmission,
			Subcategory:       ptr(SubChoke),
			Difficulty:        Intermediate,
			Description:       "Gi choke using same-direction collar grips, finished by spinning around the opponent's head.",
			KeyPoints:         []string{"Both grips like holding a bat", "Walk around the head"},
			StartingPosition:  ptr(PositionKneeOnBelly),
			GiLegal:           true,
			NoGiLegal:         false,
			Points:            ptr(0),
			RelatedTechniques: []string{"knee-on-belly"},
		},

		// Positions
		{
			ID:                "mount",
			Name:              "Mount",
			Aliases:           []string{"Full Mount", "Tate Shiho Gatame"},
			Category:          CategoryPosition,
			Subcategory:       ptr(SubDominant),
			Difficulty:        Fundamental,
			Description:       "Dominant top position sitting astride the opponent's torso with both knees on the mat.",
			KeyPoints:         []string{"Knees tight to the hips", "Hands post wide when bumped", "Heavy hips"},
			EndingPosition:    ptr(PositionMount),
			GiLegal:           true,
			NoGiLegal:         true,
			Points:            ptr(4),
			RelatedTechniques: []string{"upa-escape", "elbow-knee-escape", "armbar"},
		},
		{
			ID:                "side-control",
			Name:              "Side Control",
			Aliases:           []string{"Side Mount", "Yoko Shiho Gatame", "Cross Side"},
			Category:          CategoryPosition,
			Subcategory:       ptr(SubDominant),
			Difficulty:        Fundamental,
			Description:       "Top pin perpendicular to the opponent, chest to chest, controlling the head and far hip.",
			KeyPoints:         []string{"Crossface", "Underhook the far arm", "Hips low"},
			EndingPosition:    ptr(PositionSideControl),
			GiLegal:           true,
			NoGiLegal:         true,
			RelatedTechniques: []string{"americana", "side-control-escape"},
		},
		{
			ID:                "back-control",
			Name:              "Back Control",
			Aliases:           []string{"Back Mount", "Rear Mount"},
			Category:          CategoryPosition,
			Subcategory:       ptr(SubDominant),
			Difficulty:        Fundamental,
			Description:       "Controlling the opponent from behind with both hooks in and a seatbelt grip.",
			KeyPoints:         []string{"Chest glued to their back", "Hooks in, heels active", "Seatbelt grip"},
			EndingPosition:    ptr(PositionBackControl),
			GiLegal:           true,
			NoGiLegal:         true,
			Points:            ptr(4),
			RelatedTechniques: []string{"rear-naked-choke", "back-escape", "seatbelt-control"},
		},
		{
			ID:                "knee-on-belly",
			Name:              "Knee on Belly",
			Aliases:           []string{"Knee on Stomach", "Knee Ride"},
			Category:          CategoryPosition,
			Subcategory:       ptr(SubDominant),
			Difficulty:        Fundamental,
			Description:       "Mobile top position with the knee driving across the opponent's torso and the other foot posted.",
			KeyPoints:         []string{"Shin across the belt line", "Far grip on the collar or arm", "Stay on the balls of the feet"},
			StartingPosition:  ptr(PositionSideControl),
			EndingPosition:    ptr(PositionKneeOnBelly),
			GiLegal:           true,
			NoGiLegal:         true,
			Points:            ptr(2),
			RelatedTechniques: []string{"baseball-bat-choke", "mount"},
		},
		{
			ID:                "north-south",
			Name:              "North-South",
			Aliases:           []string{"Kami Shiho Gatame"},
			Category:          CategoryPosition,
			Subcategory:       ptr(SubDominant),
			Difficulty:        Intermediate,
			Description:       "Top pin with the chest on the opponent's chest, head toward their hips.",
			KeyPoints:         []string{"Control both elbows", "Sprawl the hips"},
			EndingPosition:    ptr(PositionNorthSouth),
			GiLegal:           true,
			NoGiLegal:         true,
			RelatedTechniques: []string{"north-south-choke"},
		},
		{
			ID:                "seatbelt-control",
			Name:              "Seatbelt Control",
			Aliases:           []string{"Over-Under Grip"},
			Category:          CategoryPosition,
			Difficulty:        Fundamental,
			Description:       "Cross-body grip from behind, one arm over the shoulder and one under the armpit.",
			KeyPoints:         []string{"Choking arm on top", "Head on the choking-arm side"},
			StartingPosition:  ptr(PositionTurtle),
			EndingPosition:    ptr(PositionBackControl),
			GiLegal:           true,
			NoGiLegal:         true,
			RelatedTechniques: []string{"back-control", "rear-naked-choke"},
		},

		// Guards
		{
			ID:                "closed-guard",
			Name:              "Closed Guard",
			Aliases:           []string{"Full Guard"},
			Category:          CategoryGuard,
			Subcategory:       ptr(SubClosedGuard),
			Difficulty:        Fundamental,
			Description:       "Bottom position with the legs locked around the opponent's waist.",
			KeyPoints:         []string{"Break posture", "Control the sleeves or wrists", "Angle off before attacking"},
			EndingPosition:    ptr(PositionClosedGuard),
			GiLegal:           true,
			NoGiLegal:         true,
			RelatedTechniques: []string{"scissor-sweep", "hip-bump-sweep", "triangle-choke"},
		},
		{
			ID:                "half-guard",
			Name:              "Half Guard",
			Category:          CategoryGuard,
			Subcategory:       ptr(SubHalfGuard),
			Difficulty:        Fundamental,
			Description:       "Bottom position trapping one of the opponent's legs between the legs.",
			KeyPoints:         []string{"Win the underhook", "Stay on the side", "Knee shield against the crossface"},
			EndingPosition:    ptr(PositionHalfGuard),
			GiLegal:           true,
			NoGiLegal:         true,
			RelatedTechniques: []string{"old-school-sweep", "deep-half-guard"},
		},
		{
			ID:                "butterfly-guard",
			Name:              "Butterfly Guard",
			Aliases:           []string{"Hooks Guard"},
			Category:          CategoryGuard,
			Subcategory:       ptr(SubOpenGuard),
			Difficulty:        Fundamental,
			Description:       "Seated open guard with both insteps hooked inside the opponent's thighs.",
			KeyPoints:         []string{"Underhook and overhook", "Stay upright", "Elevate with the hook"},
			EndingPosition:    ptr(PositionOpenGuard),
			GiLegal:           true,
			NoGiLegal:         true,
			RelatedTechniques: []string{"butterfly-sweep"},
		},
		{
			ID:                "de-la-riva-guard",
			Name:              "De La Riva Guard",
			Aliases:           []string{"DLR"},
			Category:          CategoryGuard,
			Subcategory:       ptr(SubOpenGuard),
			Difficulty:        Intermediate,
			Description:       "Open guard hooking the outside of the opponent's lead leg while gripping the ankle and sleeve or collar.",
			KeyPoints:         []string{"Hook wraps the outside of the leg", "Ankle grip on the same leg", "Keep the far foot on the hip"},
			EndingPosition:    ptr(PositionOpenGuard),
			GiLegal:           true,
			NoGiLegal:         true,
			RelatedTechniques: []string{"berimbolo", "tripod-sweep"},
		},
		{
			ID:                "spider-guard",
			Name:              "Spider Guard",
			Category:          CategoryGuard,
			Subcategory:       ptr(SubOpenGuard),
			Difficulty:        Intermediate,
			Description:       "Gi open guard controlling both sleeves with the feet pressing into the biceps.",
			KeyPoints:         []string{"Sleeve grips with the pinky side", "Feet in the biceps", "Extend one leg at a time"},
			EndingPosition:    ptr(PositionOpenGuard),
			GiLegal:           true,
			NoGiLegal:         false,
			RelatedTechniques: []string{"triangle-choke", "omoplata"},
		},
		{
			ID:                "x-guard",
			Name:              "X-Guard",
			Category:          CategoryGuard,
			Subcategory:       ptr(SubOpenGuard),
			Difficulty:        Advanced,
			Description:       "Guard underneath a standing opponent with the legs crossed around one of their legs.",
			KeyPoints:         []string{"Shoulder under the hip", "Hold the near leg", "Extend the X to off-balance"},
			StartingPosition:  ptr(PositionOpenGuard),
			EndingPosition:    ptr(PositionOpenGuard),
			GiLegal:           true,
			NoGiLegal:         true,
			RelatedTechniques: []string{"technical-stand-up"},
		},
		{
			ID:                "deep-half-guard",
			Name:              "Deep Half Guard",
			Category:          CategoryGuard,
			Subcategory:       ptr(SubHalfGuard),
			Difficulty:        Advanced,
			Description:       "Half guard variation with the body underneath the opponent, hugging their leg.",
			KeyPoints:         []string{"Head on the inside", "Hug the leg", "Waiter sweep from underneath"},
			StartingPosition:  ptr(PositionHalfGuard),
			EndingPosition:    ptr(PositionHalfGuard),
			GiLegal:           true,
			NoGiLegal:         true,
			RelatedTechniques: []string{"half-guard"},
		},
		{
			ID:             "lasso-guard",
			Name:           "Lasso Guard",
			Category:       CategoryGuard,
			Subcategory:    ptr(SubOpenGuard),
			Difficulty:     Intermediate,
			Description:    "Gi guard that wraps a leg around the opponent's arm while holding the sleeve.",
			KeyPoints:      []string{"Leg wraps over the arm", "Tight sleeve grip"},
			EndingPosition: ptr(PositionOpenGuard),
			GiLegal:        true,
			NoGiLegal:      false,
		},

		// Guard passes
		{
			ID:                "toreando-pass",
			Name:              "Toreando Pass",
			Aliases:           []string{"Bullfighter Pass", "Toreana"},
			Category:          CategoryGuardPass,
			Subcategory:       ptr(SubSpeed),
			Difficulty:        Fundamental,
			Description:       "Standing pass that pushes the legs to one side and circles around them.",
			KeyPoints:         []string{"Grip the knees or pants", "Throw the legs away", "Step wide and land chest to chest"},
			StartingPosition:  ptr(PositionGuardTop),
			EndingPosition:    ptr(PositionSideControl),
			GiLegal:           true,
			NoGiLegal:         true,
			Points:            ptr(3),
			RelatedTechniques: []string{"knee-slice-pass", "leg-drag"},
		},
		{
			ID:                "knee-slice-pass",
			Name:              "Knee Slice Pass",
			Aliases:           []string{"Knee Cut", "Knee Through"},
			Category:          CategoryGuardPass,
			Subcategory:       ptr(SubPressure),
			Difficulty:        Fundamental,
			Description:       "Pass that slides the knee across the opponent's thigh while controlling the underhook and crossface.",
			KeyPoints:         []string{"Pin the thigh with the knee", "Crossface or underhook", "Keep the back foot light"},
			StartingPosition:  ptr(PositionHalfGuard),
			EndingPosition:    ptr(PositionSideControl),
			GiLegal:           true,
			NoGiLegal:         true,
			Points:            ptr(3),
			RelatedTechniques: []string{"toreando-pass", "half-guard"},
		},
		{
			ID:                "double-under-pass",
			Name:              "Double Under Pass",
			Aliases:           []string{"Stack Pass"},
			Category:          CategoryGuardPass,
			Subcategory:       ptr(SubPressure),
			Difficulty:        Fundamental,
			Description:       "Pass that scoops both legs, stacks the opponent onto the shoulders and walks around.",
			KeyPoints:         []string{"Both arms under the thighs", "Stack the hips high", "Walk toward the head"},
			StartingPosition:  ptr(PositionGuardTop),
			EndingPosition:    ptr(PositionSideControl),
			GiLegal:           true,
			NoGiLegal:         true,
			Points:            ptr(3),
			RelatedTechniques: []string{"over-under-pass"},
		},
		{
			ID:                "over-under-pass",
			Name:              "Over-Under Pass",
			Category:          CategoryGuardPass,
			Subcategory:       ptr(SubPressure),
			Difficulty:        Intermediate,
			Description:       "Pressure pass with one arm over a leg and the other under the opposite leg, pinning the hips.",
			KeyPoints:         []string{"Shoulder pressure on the hip", "Walk to the side of the over arm"},
			StartingPosition:  ptr(PositionGuardTop),
			EndingPosition:    ptr(PositionSideControl),
			GiLegal:           true,
			NoGiLegal:         true,
			Points:            ptr(3),
			RelatedTechniques: []string{"double-under-pass"},
		},
		{
			ID:                "leg-drag",
			Name:              "Leg Drag",
			Category:          CategoryGuardPass,
			Subcategory:       ptr(SubSpeed),
			Difficulty:        Intermediate,
			Description:       "Pass that drags the opponent's leg across their body and pins the hips to the side.",
			KeyPoints:         []string{"Drag the knee across the centerline", "Hip to hip", "Control the far arm"},
			StartingPosition:  ptr(PositionGuardTop),
			EndingPosition:    ptr(PositionSideControl),
			GiLegal:           true,
			NoGiLegal:         true,
			Points:            ptr(3),
			RelatedTechniques: []string{"toreando-pass"},
		},
		{
			ID:               "smash-pass",
			Name:             "Smash Pass",
			Category:         CategoryGuardPass,
			Subcategory:      ptr(SubPressure),
			Difficulty:       Intermediate,
			Description:      "Folds both knees to one side and smashes them down with the hips before stepping around.",
			KeyPoints:        []string{"Flatten the knees", "Heavy hips on the thighs"},
			StartingPosition: ptr(PositionGuardTop),
			EndingPosition:   ptr(PositionMount),
			GiLegal:          true,
			NoGiLegal:        true,
			Points:           ptr(3),
		},

		// Sweeps
		{
			ID:                "scissor-sweep",
			Name:              "Scissor Sweep",
			Category:          CategorySweep,
			Subcategory:       ptr(SubClosedGuard),
			Difficulty:        Fundamental,
			Description:       "Closed guard sweep that chops the opponent's base with a scissoring motion of the legs.",
			KeyPoints:         []string{"Collar and sleeve grips", "Shin across the belly", "Chop the far leg as you pull"},
			StartingPosition:  ptr(PositionClosedGuard),
			EndingPosition:    ptr(PositionMount),
			GiLegal:           true,
			NoGiLegal:         true,
			Points:            ptr(2),
			RelatedTechniques: []string{"hip-bump-sweep", "flower-sweep"},
		},
		{
			ID:                "hip-bump-sweep",
			Name:              "Hip Bump Sweep",
			Aliases:           []string{"Sit-Up Sweep"},
			Category:          CategorySweep,
			Subcategory:       ptr(SubClosedGuard),
			Difficulty:        Fundamental,
			Description:       "Sweep from closed guard sitting up and bumping the hips into the opponent when they posture.",
			KeyPoints:         []string{"Sit up to the elbow", "Overhook the near arm", "Drive the hip forward"},
			StartingPosition:  ptr(PositionClosedGuard),
			EndingPosition:    ptr(PositionMount),
			GiLegal:           true,
			NoGiLegal:         true,
			Points:            ptr(2),
			RelatedTechniques: []string{"kimura", "guillotine-choke"},
		},
		{
			ID:                "flower-sweep",
			Name:              "Flower Sweep",
			Aliases:           []string{"Pendulum Sweep"},
			Category:          CategorySweep,
			Subcategory:       ptr(SubClosedGuard),
			Difficulty:        Fundamental,
			Description:       "Swings the leg like a pendulum to off-balance the opponent over a trapped arm.",
			KeyPoints:         []string{"Trap the arm", "Hook the far leg", "Swing the free leg high"},
			StartingPosition:  ptr(PositionClosedGuard),
			EndingPosition:    ptr(PositionMount),
			GiLegal:           true,
			NoGiLegal:         true,
			Points:            ptr(2),
			RelatedTechniques: []string{"armbar"},
		},
		{
			ID:                "butterfly-sweep",
			Name:              "Butterfly Sweep",
			Aliases:           []string{"Hook Sweep"},
			Category:          CategorySweep,
			Subcategory:       ptr(SubOpenGuard),
			Difficulty:        Fundamental,
			Description:       "Elevates the opponent with a butterfly hook while falling to the side of the underhook.",
			KeyPoints:         []string{"Block the arm on the sweeping side", "Fall to the side", "Lift the hook"},
			StartingPosition:  ptr(PositionOpenGuard),
			EndingPosition:    ptr(PositionMount),
			GiLegal:           true,
			NoGiLegal:         true,
			Points:            ptr(2),
			RelatedTechniques: []string{"butterfly-guard"},
		},
		{
			ID:                "old-school-sweep",
			Name:              "Old School Sweep",
			Category:          CategorySweep,
			Subcategory:       ptr(SubHalfGuard),
			Difficulty:        Intermediate,
			Description:       "Half guard sweep grabbing the opponent's ankle while driving up on the underhook side.",
			KeyPoints:         []string{"Underhook first", "Grab the far ankle", "Come up on the knees"},
			StartingPosition:  ptr(PositionHalfGuard),
			EndingPosition:    ptr(PositionSideControl),
			GiLegal:           true,
			NoGiLegal:         true,
			Points:            ptr(2),
			RelatedTechniques: []string{"half-guard"},
		},
		{
			ID:                "tripod-sweep",
			Name:              "Tripod Sweep",
			Category:          CategorySweep,
			Subcategory:       ptr(SubOpenGuard),
			Difficulty:        Intermediate,
			Description:       "Sweeps a standing opponent by pushing the hip while pulling the ankle.",
			KeyPoints:         []string{"Foot on the hip", "Hook behind the ankle", "Push and pull at once"},
			StartingPosition:  ptr(PositionOpenGuard),
			GiLegal:           true,
			NoGiLegal:         true,
			Points:            ptr(2),
			RelatedTechniques: []string{"de-la-riva-guard"},
		},
		{
			ID:                "berimbolo",
			Name:              "Berimbolo",
			Category:          CategorySweep,
			Subcategory:       ptr(SubOpenGuard),
			Difficulty:        Advanced,
			Description:       "Inverting sweep from De La Riva that spins under the opponent to take the back.",
			KeyPoints:         []string{"Grip the belt or pants", "Invert under the hips", "Hook the far leg"},
			StartingPosition:  ptr(PositionOpenGuard),
			EndingPosition:    ptr(PositionBackControl),
			GiLegal:           true,
			NoGiLegal:         true,
			Points:            ptr(2),
			RelatedTechniques: []string{"de-la-riva-guard", "back-control"},
		},

		// Takedowns
		{
			ID:                "double-leg-takedown",
			Name:              "Double Leg Takedown",
			Aliases:           []string{"Double Leg", "Morote Gari"},
			Category:          CategoryTakedown,
			Subcategory:       ptr(SubDoubleLeg),
			Difficulty:        Fundamental,
			Description:       "Shoots in to wrap both legs and drives through to take the opponent down.",
			KeyPoints:         []string{"Change levels", "Penetration step", "Head on the outside"},
			StartingPosition:  ptr(PositionStanding),
			EndingPosition:    ptr(PositionGuardTop),
			GiLegal:           true,
			NoGiLegal:         true,
			Points:            ptr(2),
			RelatedTechniques: []string{"single-leg-takedown", "guillotine-choke"},
		},
		{
			ID:                "single-leg-takedown",
			Name:              "Single Leg Takedown",
			Aliases:           []string{"Single Leg"},
			Category:          CategoryTakedown,
			Subcategory:       ptr(SubSingleLeg),
			Difficulty:        Fundamental,
			Description:       "Attacks one leg, lifting or running the pipe to finish the takedown.",
			KeyPoints:         []string{"Clear the hand", "Head tight to the body", "Run the pipe"},
			StartingPosition:  ptr(PositionStanding),
			EndingPosition:    ptr(PositionGuardTop),
			GiLegal:           true,
			NoGiLegal:         true,
			Points:            ptr(2),
			RelatedTechniques: []string{"double-leg-takedown"},
		},
		{
			ID:                "osoto-gari",
			Name:              "Osoto Gari",
			Aliases:           []string{"Major Outer Reap"},
			Category:          CategoryTakedown,
			Subcategory:       ptr(SubThrow),
			Difficulty:        Fundamental,
			Description:       "Judo throw reaping the opponent's supporting leg from the outside while breaking balance backward.",
			KeyPoints:         []string{"Break balance to the heel", "Step deep beside them", "Reap with the back of the thigh"},
			StartingPosition:  ptr(PositionStanding),
			EndingPosition:    ptr(PositionSideControl),
			GiLegal:           true,
			NoGiLegal:         true,
			Points:            ptr(2),
			RelatedTechniques: []string{"ouchi-gari"},
		},
		{
			ID:                "ouchi-gari",
			Name:              "Ouchi Gari",
			Aliases:           []string{"Major Inner Reap"},
			Category:          CategoryTakedown,
			Subcategory:       ptr(SubTrip),
			Difficulty:        Intermediate,
			Description:       "Inside trip hooking the opponent's leg between their legs while driving them backward.",
			KeyPoints:         []string{"Chest pressure", "Hook from the inside", "Drive diagonally"},
			StartingPosition:  ptr(PositionStanding),
			EndingPosition:    ptr(PositionGuardTop),
			GiLegal:           true,
			NoGiLegal:         true,
			Points:            ptr(2),
			RelatedTechniques: []string{"osoto-gari"},
		},
		{
			ID:                "seoi-nage",
			Name:              "Seoi Nage",
			Aliases:           []string{"Shoulder Throw"},
			Category:          CategoryTakedown,
			Subcategory:       ptr(SubThrow),
			Difficulty:        Advanced,
			Description:       "Judo shoulder throw loading the opponent onto the back and throwing them over the shoulder.",
			KeyPoints:         []string{"Pull the sleeve high", "Turn in with bent knees", "Lift with the legs"},
			StartingPosition:  ptr(PositionStanding),
			EndingPosition:    ptr(PositionSideControl),
			GiLegal:           true,
			NoGiLegal:         true,
			Points:            ptr(2),
			BeltRestrictions:  ptr("Dropping seoi nage is often disallowed for juvenile divisions"),
			RelatedTechniques: []string{"osoto-gari"},
		},
		{
			ID:                "guard-pull",
			Name:              "Guard Pull",
			Aliases:           []string{"Pulling Guard"},
			Category:          CategoryTakedown,
			Difficulty:        Fundamental,
			Description:       "Grips and sits to guard to bring the fight to the ground without a takedown.",
			KeyPoints:         []string{"Establish grips first", "Foot on the hip", "Sit close to the opponent"},
			StartingPosition:  ptr(PositionStanding),
			EndingPosition:    ptr(PositionClosedGuard),
			GiLegal:           true,
			NoGiLegal:         true,
			Points:            ptr(0),
			RelatedTechniques: []string{"closed-guard"},
		},

		// Escapes
		{
			ID:                "upa-escape",
			Name:              "Upa Escape",
			Aliases:           []string{"Bridge and Roll", "Trap and Roll"},
			Category:          CategoryEscape,
			Difficulty:        Fundamental,
			Description:       "Mount escape trapping an arm and foot on the same side and bridging over that shoulder.",
			KeyPoints:         []string{"Trap the arm and the foot", "Bridge high over the shoulder", "Land in their guard"},
			StartingPosition:  ptr(PositionMount),
			EndingPosition:    ptr(PositionGuardTop),
			GiLegal:           true,
			NoGiLegal:         true,
			RelatedTechniques: []string{"elbow-knee-escape", "mount"},
		},
		{
			ID:                "elbow-knee-escape",
			Name:              "Elbow-Knee Escape",
			Aliases:           []string{"Shrimp Escape", "Hip Escape"},
			Category:          CategoryEscape,
			Difficulty:        Fundamental,
			Description:       "Mount escape shrimping the hips and using the elbow to recover the knee inside.",
			KeyPoints:         []string{"Elbow to knee", "Shrimp away", "Recover half guard then full guard"},
			StartingPosition:  ptr(PositionMount),
			EndingPosition:    ptr(PositionHalfGuard),
			GiLegal:           true,
			NoGiLegal:         true,
			RelatedTechniques: []string{"upa-escape", "half-guard"},
		},
		{
			ID:                "side-control-escape",
			Name:              "Side Control Escape",
			Aliases:           []string{"Guard Recovery"},
			Category:          CategoryEscape,
			Difficulty:        Fundamental,
			Description:       "Frames against the neck and hip, shrimps away and replaces the guard.",
			KeyPoints:         []string{"Frame on the neck and hip", "Shrimp to create space", "Knee in"},
			StartingPosition:  ptr(PositionSideControl),
			EndingPosition:    ptr(PositionClosedGuard),
			GiLegal:           true,
			NoGiLegal:         true,
			RelatedTechniques: []string{"side-control"},
		},
		{
			ID:                "back-escape",
			Name:              "Back Escape",
			Category:          CategoryEscape,
			Difficulty:        Intermediate,
			Description:       "Defends the choke and slides the back to the mat on the side of the bottom hook.",
			KeyPoints:         []string{"Two-on-one on the choking arm", "Shoulders to the mat", "Clear the hook"},
			StartingPosition:  ptr(PositionBackControl),
			EndingPosition:    ptr(PositionGuardTop),
			GiLegal:           true,
			NoGiLegal:         true,
			RelatedTechniques: []string{"back-control", "rear-naked-choke"},
		},
		{
			ID:                "technical-stand-up",
			Name:              "Technical Stand-Up",
			Aliases:           []string{"Technical Lift"},
			Category:          CategoryEscape,
			Difficulty:        Fundamental,
			Description:       "Stands up from the ground while keeping a post hand and a guarding hand.",
			KeyPoints:         []string{"Post hand behind", "Lift the hips", "Sweep the leg back"},
			StartingPosition:  ptr(PositionOpenGuard),
			EndingPosition:    ptr(PositionStanding),
			GiLegal:           true,
			NoGiLegal:         true,
			RelatedTechniques: []string{"x-guard"},
		},
		{
			ID:               "granby-roll",
			Name:             "Granby Roll",
			Category:         CategoryEscape,
			Difficulty:       Advanced,
			Description:      "Shoulder roll from turtle used to recover guard or escape a front headlock.",
			KeyPoints:        []string{"Roll over the shoulder, not the neck", "Tuck the knees"},
			StartingPosition: ptr(PositionTurtle),
			EndingPosition:   ptr(PositionOpenGuard),
			GiLegal:          true,
			NoGiLegal:        true,
		},

		// Back takes
		{
			ID:                "arm-drag-back-take",
			Name:              "Arm Drag to Back",
			Aliases:           []string{"Arm Drag"},
			Category:          CategoryBackTake,
			Difficulty:        Fundamental,
			Description:       "Pulls the opponent's arm across the body and climbs to the back.",
			KeyPoints:         []string{"Two-on-one on the wrist and triceps", "Pull and move your body", "Hook the far hip"},
			StartingPosition:  ptr(PositionOpenGuard),
			EndingPosition:    ptr(PositionBackControl),
			GiLegal:           true,
			NoGiLegal:         true,
			Points:            ptr(4),
			RelatedTechniques: []string{"back-control"},
		},
		{
			ID:                "turtle-back-take",
			Name:              "Turtle Back Take",
			Aliases:           []string{"Seatbelt Roll"},
			Category:          CategoryBackTake,
			Difficulty:        Intermediate,
			Description:       "From the front or side of the turtle, secures the seatbelt and rolls to insert hooks.",
			KeyPoints:         []string{"Seatbelt first", "Insert the top hook", "Roll to the side of the bottom hook"},
			StartingPosition:  ptr(PositionTurtle),
			EndingPosition:    ptr(PositionBackControl),
			GiLegal:           true,
			NoGiLegal:         true,
			Points:            ptr(4),
			RelatedTechniques: []string{"seatbelt-control", "rear-naked-choke"},
		},
		{
			ID:                "mount-back-take",
			Name:              "Back Take from Mount",
			Category:          CategoryBackTake,
			Difficulty:        Intermediate,
			Description:       "Takes the back when the mounted opponent turns, sliding the hooks in as they roll.",
			KeyPoints:         []string{"Let them turn", "Stay heavy on the hip", "Insert hooks one at a time"},
			StartingPosition:  ptr(PositionMount),
			EndingPosition:    ptr(PositionBackControl),
			GiLegal:           true,
			NoGiLegal:         true,
			Points:            ptr(4),
			RelatedTechniques: []string{"mount", "back-control"},
		},
		{
			ID:                "crab-ride",
			Name:              "Crab Ride",
			Category:          CategoryBackTake,
			Difficulty:        Advanced,
			Description:       "Controls the opponent's hips with the legs from a seated position to expose the back.",
			KeyPoints:         []string{"Hook the far thigh", "Stay behind the hips"},
			StartingPosition:  ptr(PositionOpenGuard),
			EndingPosition:    ptr(PositionBackControl),
			GiLegal:           true,
			NoGiLegal:         true,
			Points:            ptr(4),
			RelatedTechniques: []string{"berimbolo"},
		},
	}
}
