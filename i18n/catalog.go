package i18n

var arabic = map[string]string{
	"Validation failed!":         "فشل التحقق من البيانات!",
	"Unauthorized!":              "غير مصرح!",
	"Something went wrong!":      "حدث خطأ ما!",
	"Invalid request body!":      "نص الطلب غير صالح!",
	"Unauthorized access!":       "وصول غير مصرح به!",
	"Invalid or expired token!":  "رمز غير صالح أو منتهي الصلاحية!",
	"Access denied. Admin only.": "تم رفض الوصول. للمشرفين فقط.",
	"Invalid ID!":                "معرف غير صالح!",

	"Course not found!":  "الدورة غير موجودة!",
	"Lesson not found!":  "الدرس غير موجود!",
	"Post not found!":    "المقال غير موجود!",
	"Comment not found!": "التعليق غير موجود!",
	"User not found!":    "المستخدم غير موجود!",

	"A lesson with this order already exists. Please choose a different order.": "يوجد درس بهذا الترتيب بالفعل. يرجى اختيار ترتيب مختلف.",
	"Lesson order is required":                      "ترتيب الدرس مطلوب",
	"Lesson order must be at least 1":               "يجب أن يكون ترتيب الدرس 1 على الأقل",
	"This slug is already taken, please try again.": "هذا المعرف مستخدم بالفعل، يرجى المحاولة مرة أخرى.",

	"User already enrolled in this course!":                 "أنت مسجل بالفعل في هذه الدورة!",
	"An enrollment for this course is already in progress.": "عملية تسجيل في هذه الدورة قيد التنفيذ بالفعل.",
	"Payment failed!":                                       "فشل الدفع!",
	"Payment method is required":                            "طريقة الدفع مطلوبة",
	"Successfully enrolled in the course!":                  "تم التسجيل في الدورة بنجاح!",
	"Please login to enroll in this course.":                "يرجى تسجيل الدخول للتسجيل في هذه الدورة.",

	"You can only edit your own comments.":                      "يمكنك تعديل تعليقاتك فقط.",
	"You can only delete your own comments.":                    "يمكنك حذف تعليقاتك فقط.",
	"Comments can only be edited within 30 minutes of posting.": "يمكن تعديل التعليقات خلال 30 دقيقة فقط من النشر.",
	"Comment added successfully!":                               "تمت إضافة التعليق بنجاح!",
	"Comment updated successfully!":                             "تم تحديث التعليق بنجاح!",
	"Comment deleted successfully!":                             "تم حذف التعليق بنجاح!",
	"Comment cannot be blank.":                                  "لا يمكن أن يكون التعليق فارغاً.",
	"Comment is required.":                                      "التعليق مطلوب.",
	"Comment must be at least 3 characters long.":               "يجب أن يتكون التعليق من 3 أحرف على الأقل.",
	"Comment cannot exceed 1000 characters.":                    "لا يمكن أن يتجاوز التعليق 1000 حرف.",

	"Course created successfully!":        "تم إنشاء الدورة بنجاح!",
	"Course updated successfully!":        "تم تحديث الدورة بنجاح!",
	"Course deleted successfully!":        "تم حذف الدورة بنجاح!",
	"Lesson created successfully!":        "تم إنشاء الدرس بنجاح!",
	"Lesson updated successfully!":        "تم تحديث الدرس بنجاح!",
	"Lesson deleted successfully!":        "تم حذف الدرس بنجاح!",
	"Lessons reordered successfully!":     "تمت إعادة ترتيب الدروس بنجاح!",
	"Lesson status updated successfully!": "تم تحديث حالة الدرس بنجاح!",
	"Post created successfully!":          "تم إنشاء المقال بنجاح!",
	"Post updated successfully!":          "تم تحديث المقال بنجاح!",
	"Post deleted successfully!":          "تم حذف المقال بنجاح!",

	"Registration successful!":   "تم التسجيل بنجاح!",
	"Login successful!":          "تم تسجيل الدخول بنجاح!",
	"Invalid email or password!": "البريد الإلكتروني أو كلمة المرور غير صحيحة!",
	"Email already registered!":  "البريد الإلكتروني مسجل بالفعل!",

	"Home fetched successfully!":              "تم جلب الصفحة الرئيسية بنجاح!",
	"Courses fetched successfully!":           "تم جلب الدورات بنجاح!",
	"Course fetched successfully!":            "تم جلب الدورة بنجاح!",
	"Lessons fetched successfully!":           "تم جلب الدروس بنجاح!",
	"Lesson fetched successfully!":            "تم جلب الدرس بنجاح!",
	"Posts fetched successfully!":             "تم جلب المقالات بنجاح!",
	"Post fetched successfully!":              "تم جلب المقال بنجاح!",
	"Comments fetched successfully!":          "تم جلب التعليقات بنجاح!",
	"Enrollments fetched successfully!":       "تم جلب التسجيلات بنجاح!",
	"Enrollment status fetched successfully!": "تم جلب حالة التسجيل بنجاح!",
	"Dashboard stats fetched successfully!":   "تم جلب إحصائيات لوحة التحكم بنجاح!",
}
